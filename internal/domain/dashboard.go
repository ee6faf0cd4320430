package domain

// Pipeline 是首页上按 persona 展示的业务流水线卡片
type Pipeline struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MetricValue string `json:"metricValue"`
	MetricLabel string `json:"metricLabel"`
}

type Metric struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Agent 是仪表盘上的 AI agent 卡片，各个 persona 共用同一套
type Agent struct {
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Metrics      []Metric `json:"metrics"`
	Capabilities []string `json:"capabilities"`
}
