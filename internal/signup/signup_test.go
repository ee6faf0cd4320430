package signup

import (
	"testing"

	"github.com/clearsight-dev/clearsight/backend/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlow() *Flow {
	return NewFlow(validator.New(validator.WithRequiredStructEnabled()))
}

func validAccount() AccountDetails {
	return AccountDetails{
		Name:     "Alice",
		Email:    "a@b.com",
		Username: "alice",
		Password: "x",
	}
}

func TestFlow_HappyPath(t *testing.T) {
	flow := newTestFlow()
	assert.Equal(t, StepAccount, flow.Step())

	require.NoError(t, flow.SubmitAccount(validAccount()))
	assert.Equal(t, StepDataSource, flow.Step())

	require.NoError(t, flow.SelectDataSource(domain.DataSourceManual, nil))

	req, err := flow.Finalize()
	require.NoError(t, err)
	assert.Equal(t, StepDone, flow.Step())

	// 最终请求合并两步的数据
	assert.Equal(t, "Alice", req.Name)
	assert.Equal(t, "a@b.com", req.Email)
	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, "x", req.Password)
	assert.Equal(t, domain.DataSourceManual, req.DataSource)
}

func TestFlow_AccountValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AccountDetails)
	}{
		{"用户名为空", func(a *AccountDetails) { a.Username = "" }},
		{"密码为空", func(a *AccountDetails) { a.Password = "" }},
		{"邮箱格式错误", func(a *AccountDetails) { a.Email = "not-an-email" }},
		{"姓名为空", func(a *AccountDetails) { a.Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow := newTestFlow()
			account := validAccount()
			tt.mutate(&account)

			err := flow.SubmitAccount(account)
			require.Error(t, err)
			// 校验失败时停留在第一步
			assert.Equal(t, StepAccount, flow.Step())
		})
	}
}

func TestFlow_BackPreservesAccountValues(t *testing.T) {
	flow := newTestFlow()
	account := validAccount()
	require.NoError(t, flow.SubmitAccount(account))

	require.NoError(t, flow.Back())
	assert.Equal(t, StepAccount, flow.Step())

	// 返回上一步后此前录入的值原样保留
	assert.Equal(t, account, flow.Account())

	// 再次前进后流程照常完成
	require.NoError(t, flow.SubmitAccount(flow.Account()))
	require.NoError(t, flow.SelectDataSource(domain.DataSourceAPI, nil))

	req, err := flow.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, domain.DataSourceAPI, req.DataSource)
}

func TestFlow_CSVRequiresFile(t *testing.T) {
	flow := newTestFlow()
	require.NoError(t, flow.SubmitAccount(validAccount()))

	err := flow.SelectDataSource(domain.DataSourceCSVUpload, nil)
	assert.ErrorIs(t, err, ErrFileRequired)

	err = flow.SelectDataSource(domain.DataSourceCSVUpload, map[string]any{"filename": ""})
	assert.ErrorIs(t, err, ErrFileRequired)

	require.NoError(t, flow.SelectDataSource(domain.DataSourceCSVUpload, map[string]any{"filename": "leads.csv"}))

	req, err := flow.Finalize()
	require.NoError(t, err)
	assert.Equal(t, domain.DataSourceCSVUpload, req.DataSource)
	assert.Equal(t, "leads.csv", req.DataSourceConfig["filename"])
}

func TestFlow_InvalidDataSource(t *testing.T) {
	flow := newTestFlow()
	require.NoError(t, flow.SubmitAccount(validAccount()))

	err := flow.SelectDataSource(domain.DataSource("FTP"), nil)
	assert.ErrorIs(t, err, ErrInvalidDataSource)
}

func TestFlow_FinalizeWithoutSelection(t *testing.T) {
	flow := newTestFlow()
	require.NoError(t, flow.SubmitAccount(validAccount()))

	_, err := flow.Finalize()
	assert.ErrorIs(t, err, ErrNoDataSource)
}

func TestFlow_StepOrderEnforced(t *testing.T) {
	flow := newTestFlow()

	// 第一步不允许选择数据源，也不允许返回
	assert.ErrorIs(t, flow.SelectDataSource(domain.DataSourceManual, nil), ErrInvalidStep)
	assert.ErrorIs(t, flow.Back(), ErrInvalidStep)
	_, err := flow.Finalize()
	assert.ErrorIs(t, err, ErrInvalidStep)

	require.NoError(t, flow.SubmitAccount(validAccount()))

	// 第二步不允许重复提交账号信息
	assert.ErrorIs(t, flow.SubmitAccount(validAccount()), ErrInvalidStep)

	require.NoError(t, flow.SelectDataSource(domain.DataSourceManual, nil))
	_, err = flow.Finalize()
	require.NoError(t, err)

	// 已完成的流程不能再操作
	assert.ErrorIs(t, flow.Back(), ErrInvalidStep)
	_, err = flow.Finalize()
	assert.ErrorIs(t, err, ErrInvalidStep)
}
