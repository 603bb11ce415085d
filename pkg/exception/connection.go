package exception

import "github.com/yanun0323/errors"

var (
	ErrConnectionRequest = errors.New("connection: build request")
	ErrConnectionSend    = errors.New("connection: send request")
	ErrConnectionPing    = errors.New("connection: ping failed")
)
