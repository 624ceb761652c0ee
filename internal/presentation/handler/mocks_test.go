package handler

import (
	"context"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"diskrelay/internal/domain/dto"
	"diskrelay/internal/domain/entity"
)

type mockApprover struct {
	mock.Mock
}

func (m *mockApprover) Ready() error {
	return m.Called().Error(0)
}

func (m *mockApprover) ApproveProvider(ctx context.Context, provider common.Address,
	approve bool,
) (entity.TxResult, error) {
	ret := m.Called(ctx, provider, approve)

	return ret.Get(0).(entity.TxResult), ret.Error(1)
}

type mockRolesSetter struct {
	mock.Mock
}

func (m *mockRolesSetter) Ready() error {
	return m.Called().Error(0)
}

func (m *mockRolesSetter) SetRentalRoles(ctx context.Context, roles dto.RentalRoles) (entity.TxResult, error) {
	ret := m.Called(ctx, roles)

	return ret.Get(0).(entity.TxResult), ret.Error(1)
}

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, filename string, content []byte) (entity.AddResult, error) {
	ret := m.Called(ctx, filename, content)

	return ret.Get(0).(entity.AddResult), ret.Error(1)
}

type mockContentGetter struct {
	mock.Mock
}

func (m *mockContentGetter) GetContent(ctx context.Context, cid string) (io.ReadCloser, error) {
	ret := m.Called(ctx, cid)
	rc, _ := ret.Get(0).(io.ReadCloser)

	return rc, ret.Error(1)
}

type mockUploadGetter struct {
	mock.Mock
}

func (m *mockUploadGetter) GetUpload(ctx context.Context, cid string) (*dto.UploadDescriptor, error) {
	ret := m.Called(ctx, cid)
	desc, _ := ret.Get(0).(*dto.UploadDescriptor)

	return desc, ret.Error(1)
}
