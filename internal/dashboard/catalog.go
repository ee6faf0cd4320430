// Package dashboard 提供仪表盘的静态展示数据，按 persona 区分
package dashboard

import (
	"github.com/clearsight-dev/clearsight/backend/internal/domain"
)

var pipelines = map[domain.Persona][]domain.Pipeline{
	domain.PersonaSales: {
		{
			ID:          "lead-scoring",
			Title:       "Lead Scoring",
			Description: "AI-powered lead qualification and prioritization",
			MetricValue: "82%",
			MetricLabel: "Accuracy",
		},
		{
			ID:          "prospect-nurturing",
			Title:       "Prospect Nurturing",
			Description: "Automated prospect engagement and tracking",
			MetricValue: "64%",
			MetricLabel: "Engagement",
		},
		{
			ID:          "conversion-optimization",
			Title:       "Conversion Optimization",
			Description: "Smart conversion funnel optimization",
			MetricValue: "28%",
			MetricLabel: "Conversion",
		},
	},
	domain.PersonaMarketing: {
		{
			ID:          "campaign-performance",
			Title:       "Campaign Performance",
			Description: "Cross-channel campaign tracking and attribution",
			MetricValue: "3.4x",
			MetricLabel: "ROAS",
		},
		{
			ID:          "audience-segmentation",
			Title:       "Audience Segmentation",
			Description: "Behavioral audience clustering and targeting",
			MetricValue: "12",
			MetricLabel: "Segments",
		},
		{
			ID:          "content-insights",
			Title:       "Content Insights",
			Description: "Engagement analysis across published content",
			MetricValue: "47%",
			MetricLabel: "Engagement",
		},
	},
	domain.PersonaOperations: {
		{
			ID:          "process-efficiency",
			Title:       "Process Efficiency",
			Description: "Bottleneck detection across operational workflows",
			MetricValue: "91%",
			MetricLabel: "Throughput",
		},
		{
			ID:          "resource-allocation",
			Title:       "Resource Allocation",
			Description: "Capacity planning and workload balancing",
			MetricValue: "78%",
			MetricLabel: "Utilization",
		},
		{
			ID:          "incident-response",
			Title:       "Incident Response",
			Description: "Automated incident triage and escalation",
			MetricValue: "14m",
			MetricLabel: "MTTR",
		},
	},
}

var metrics = map[domain.Persona][]domain.Metric{
	domain.PersonaSales: {
		{Title: "Lead Score", Value: "82", Description: "Average lead quality score"},
		{Title: "Conversion Rate", Value: "23%", Description: "Current conversion rate"},
		{Title: "Active Leads", Value: "1,284", Description: "Total active leads"},
		{Title: "Revenue", Value: "$124.5k", Description: "Monthly recurring revenue"},
	},
	domain.PersonaMarketing: {
		{Title: "Impressions", Value: "2.1M", Description: "Monthly ad impressions"},
		{Title: "CTR", Value: "4.7%", Description: "Average click-through rate"},
		{Title: "New Subscribers", Value: "3,450", Description: "Subscribers gained this month"},
		{Title: "CAC", Value: "$38", Description: "Customer acquisition cost"},
	},
	domain.PersonaOperations: {
		{Title: "Throughput", Value: "91%", Description: "Overall process throughput"},
		{Title: "SLA Compliance", Value: "99.2%", Description: "Requests within SLA"},
		{Title: "Open Incidents", Value: "7", Description: "Currently open incidents"},
		{Title: "Cost per Unit", Value: "$2.14", Description: "Average operational cost"},
	},
}

var agents = []domain.Agent{
	{
		Type:        "context",
		Title:       "Context-Based Decisions",
		Description: "Analyzes historical data for informed decision making",
		Metrics: []domain.Metric{
			{Title: "Accuracy", Value: "94%"},
			{Title: "Decisions/hr", Value: "126"},
		},
		Capabilities: []string{
			"Historical data analysis",
			"Pattern recognition",
			"Trend identification",
			"Score adjustment recommendations",
		},
	},
	{
		Type:        "awareness",
		Title:       "Situational Awareness",
		Description: "Monitors real-time events and changes",
		Metrics: []domain.Metric{
			{Title: "Response Time", Value: "1.2s"},
			{Title: "Alert Accuracy", Value: "98%"},
		},
		Capabilities: []string{
			"Real-time monitoring",
			"Event detection",
			"Behavioral analysis",
			"Immediate response triggers",
		},
	},
	{
		Type:        "autonomy",
		Title:       "Autonomy Agent",
		Description: "Manages automated decision processes",
		Metrics: []domain.Metric{
			{Title: "Auto-resolved", Value: "76%"},
			{Title: "Success Rate", Value: "92%"},
		},
		Capabilities: []string{
			"Automated decisions",
			"Threshold management",
			"Process orchestration",
			"Self-adjustment",
		},
	},
	{
		Type:        "collaboration",
		Title:       "Collaboration Agent",
		Description: "Coordinates work across teams and systems",
		Metrics: []domain.Metric{
			{Title: "Handoffs/day", Value: "64"},
			{Title: "Sync Rate", Value: "97%"},
		},
		Capabilities: []string{
			"Cross-team routing",
			"Shared context management",
			"Task delegation",
			"Status broadcasting",
		},
	},
	{
		Type:        "multimodal",
		Title:       "Multimodal Agent",
		Description: "Processes text, documents and structured data together",
		Metrics: []domain.Metric{
			{Title: "Formats", Value: "9"},
			{Title: "Parse Accuracy", Value: "95%"},
		},
		Capabilities: []string{
			"Document ingestion",
			"Table extraction",
			"Mixed-format analysis",
			"Unified summaries",
		},
	},
	{
		Type:        "reasoning",
		Title:       "Reasoning Agent",
		Description: "Performs multi-step analysis and computation",
		Metrics: []domain.Metric{
			{Title: "Depth", Value: "5 steps"},
			{Title: "Precision", Value: "93%"},
		},
		Capabilities: []string{
			"Multi-step inference",
			"What-if simulation",
			"Numeric computation",
			"Explanation generation",
		},
	},
}

// PipelinesFor 返回该 persona 可用的流水线卡片
func PipelinesFor(p domain.Persona) []domain.Pipeline {
	return pipelines[p]
}

// MetricsFor 返回该 persona 的指标卡片
func MetricsFor(p domain.Persona) []domain.Metric {
	return metrics[p]
}

// Agents 返回 AI agent 卡片，各 persona 共用
func Agents() []domain.Agent {
	return agents
}
