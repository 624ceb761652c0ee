package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"diskrelay/internal/domain/entity"
	"diskrelay/internal/domain/model"
	"diskrelay/internal/domain/repository/ipfs"
)

type mockChain struct {
	mock.Mock
}

func (m *mockChain) Ready(contract entity.ContractName) error {
	return m.Called(contract).Error(0)
}

func (m *mockChain) Write(ctx context.Context, contract entity.ContractName, method string,
	args ...any,
) (entity.TxResult, error) {
	ret := m.Called(ctx, contract, method, args)

	return ret.Get(0).(entity.TxResult), ret.Error(1)
}

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) Write(ctx context.Context, receipt *model.Receipt) error {
	return m.Called(ctx, receipt).Error(0)
}

type mockRetriever struct {
	mock.Mock
}

func (m *mockRetriever) GetByRef(ctx context.Context, kind, ref string) (*model.Receipt, error) {
	ret := m.Called(ctx, kind, ref)
	receipt, _ := ret.Get(0).(*model.Receipt)

	return receipt, ret.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, message string) error {
	return m.Called(ctx, message).Error(0)
}

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Add(ctx context.Context, name string, data []byte, contentType string) (entity.AddResult, error) {
	ret := m.Called(ctx, name, data, contentType)

	return ret.Get(0).(entity.AddResult), ret.Error(1)
}

func (m *mockClient) Cat(ctx context.Context, cid string) (io.ReadCloser, error) {
	ret := m.Called(ctx, cid)
	rc, _ := ret.Get(0).(io.ReadCloser)

	return rc, ret.Error(1)
}

// countingFactory hands out the same mock client and counts how often a
// client was requested.
type countingFactory struct {
	client *mockClient
	built  int
}

func (f *countingFactory) NewClient() ipfs.Client {
	f.built++

	return f.client
}
