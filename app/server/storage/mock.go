package storage

import (
	"io"

	"github.com/stretchr/testify/mock"
)

var _ Storage = (*StorageMock)(nil)

type StorageMock struct {
	mock.Mock
}

func (m *StorageMock) Exists(path string) bool {
	return m.Called(path).Bool(0)
}

func (m *StorageMock) Size(path string) (uint64, error) {
	args := m.Called(path)

	return args.Get(0).(uint64), args.Error(1)
}

func (m *StorageMock) OpenForWrite(path string) (io.WriteCloser, error) {
	args := m.Called(path)
	wc, _ := args.Get(0).(io.WriteCloser)

	return wc, args.Error(1)
}
