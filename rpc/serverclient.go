package rpc

// TcpServerClient pairs the server a node runs with the client it uses to
// reach its peer. Workers serve roll calls while calling into the
// coordinator.
type TcpServerClient struct {
	Server TcpServer
	Client TcpClient
}

func NewTcpServerClient(object interface{}, serverAddress string, serverName string, clientServerAddress string, clientName string) TcpServerClient {
	return TcpServerClient{
		Server: NewTcpServer(object, serverAddress, serverName),
		Client: NewTcpClient(clientServerAddress, clientName),
	}
}
