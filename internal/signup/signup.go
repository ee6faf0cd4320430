// Package signup 实现注册向导的两步状态机：
// 先收集账号信息，再选择数据源，最后合并成一次创建请求。
package signup

import (
	"errors"

	"github.com/clearsight-dev/clearsight/backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

type Step int

const (
	StepAccount Step = iota
	StepDataSource
	StepDone
)

var (
	ErrInvalidStep       = errors.New("当前步骤不允许该操作")
	ErrInvalidDataSource = errors.New("无效的数据源类型")
	ErrFileRequired      = errors.New("选择 CSV 上传时必须先选择文件")
	ErrNoDataSource      = errors.New("尚未选择数据源")
)

type AccountDetails struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegistrationRequest 是两步合并后的最终创建请求
type RegistrationRequest struct {
	Name             string
	Email            string
	Username         string
	Password         string
	DataSource       domain.DataSource
	DataSourceConfig map[string]any
}

// Flow 携带逐步累积的草稿，提交之前草稿不会丢失，
// 从数据源一步返回时账号字段原样保留
type Flow struct {
	validate *validator.Validate

	step             Step
	account          AccountDetails
	dataSource       *domain.DataSource
	dataSourceConfig map[string]any
}

func NewFlow(validate *validator.Validate) *Flow {
	return &Flow{
		validate: validate,
		step:     StepAccount,
	}
}

func (f *Flow) Step() Step {
	return f.step
}

// Account 返回已录入的账号草稿，用于返回上一步时回填表单
func (f *Flow) Account() AccountDetails {
	return f.account
}

// SubmitAccount 校验并保存账号信息，通过后进入数据源选择
func (f *Flow) SubmitAccount(details AccountDetails) error {
	if f.step != StepAccount {
		return ErrInvalidStep
	}

	if err := f.validate.Struct(details); err != nil {
		return err
	}

	f.account = details
	f.step = StepDataSource

	return nil
}

// Back 回到账号一步，已录入的值全部保留
func (f *Flow) Back() error {
	if f.step != StepDataSource {
		return ErrInvalidStep
	}

	f.step = StepAccount

	return nil
}

// SelectDataSource 记录数据源选择；CSV 上传必须带上文件名才算选择完成
func (f *Flow) SelectDataSource(ds domain.DataSource, config map[string]any) error {
	if f.step != StepDataSource {
		return ErrInvalidStep
	}

	if !ds.IsValid() {
		return ErrInvalidDataSource
	}

	if ds == domain.DataSourceCSVUpload {
		filename, _ := config["filename"].(string)
		if filename == "" {
			return ErrFileRequired
		}
	}

	f.dataSource = &ds
	f.dataSourceConfig = config

	return nil
}

// Finalize 把两步的数据合并成一次创建请求并结束流程
func (f *Flow) Finalize() (*RegistrationRequest, error) {
	if f.step != StepDataSource {
		return nil, ErrInvalidStep
	}
	if f.dataSource == nil {
		return nil, ErrNoDataSource
	}

	f.step = StepDone

	return &RegistrationRequest{
		Name:             f.account.Name,
		Email:            f.account.Email,
		Username:         f.account.Username,
		Password:         f.account.Password,
		DataSource:       *f.dataSource,
		DataSourceConfig: f.dataSourceConfig,
	}, nil
}
