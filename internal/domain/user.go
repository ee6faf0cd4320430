package domain

import (
	"time"
)

type Persona string

const (
	PersonaSales      Persona = "SALES"
	PersonaMarketing  Persona = "MARKETING"
	PersonaOperations Persona = "OPERATIONS"
)

// AllPersonas 是 persona 的封闭枚举，枚举之外的值必须在边界处被拒绝
var AllPersonas = []Persona{PersonaSales, PersonaMarketing, PersonaOperations}

func (p Persona) IsValid() bool {
	switch p {
	case PersonaSales, PersonaMarketing, PersonaOperations:
		return true
	default:
		return false
	}
}

type DataSource string

const (
	DataSourceSalesforce DataSource = "SALESFORCE"
	DataSourceCSVUpload  DataSource = "CSV_UPLOAD"
	DataSourceAPI        DataSource = "API"
	DataSourceManual     DataSource = "MANUAL"
)

var AllDataSources = []DataSource{DataSourceSalesforce, DataSourceCSVUpload, DataSourceAPI, DataSourceManual}

func (ds DataSource) IsValid() bool {
	switch ds {
	case DataSourceSalesforce, DataSourceCSVUpload, DataSourceAPI, DataSourceManual:
		return true
	default:
		return false
	}
}

type User struct {
	ID           int64       `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Persona      *Persona    `json:"persona"`
	DataSource   *DataSource `json:"dataSource"`
	// DataSourceConfig 是自由结构的数据源配置，例如 CSV 上传时的 {"filename": "..."}
	DataSourceConfig map[string]any `json:"dataSourceConfig,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// Clone 返回一个深拷贝，保证内存仓库外部拿不到内部记录的引用
func (u *User) Clone() *User {
	clone := *u
	if u.Persona != nil {
		p := *u.Persona
		clone.Persona = &p
	}
	if u.DataSource != nil {
		ds := *u.DataSource
		clone.DataSource = &ds
	}
	if u.DataSourceConfig != nil {
		cfg := make(map[string]any, len(u.DataSourceConfig))
		for k, v := range u.DataSourceConfig {
			cfg[k] = v
		}
		clone.DataSourceConfig = cfg
	}
	return &clone
}
