package transfer

import (
	"net"

	"github.com/stretchr/testify/mock"
)

var _ Sender = (*SenderMock)(nil)

type SenderMock struct {
	mock.Mock
}

func (m *SenderMock) Send(path string, length uint64, socket net.Conn) error {
	return m.Called(path, length, socket).Error(0)
}
