package server

import "net"

func (s *HTTPServer) SetListen(listen func(network, address string) (net.Listener, error)) {
	s.listen = listen
}
