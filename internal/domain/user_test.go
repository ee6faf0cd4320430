package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonaIsValid(t *testing.T) {
	for _, p := range AllPersonas {
		assert.True(t, p.IsValid())
	}
	assert.False(t, Persona("FINANCE").IsValid())
	assert.False(t, Persona("").IsValid())
	assert.False(t, Persona("sales").IsValid())
}

func TestDataSourceIsValid(t *testing.T) {
	for _, ds := range AllDataSources {
		assert.True(t, ds.IsValid())
	}
	assert.False(t, DataSource("FTP").IsValid())
	assert.False(t, DataSource("").IsValid())
}

func TestUserClone(t *testing.T) {
	persona := PersonaSales
	ds := DataSourceCSVUpload
	user := &User{
		ID:               1,
		Username:         "alice",
		Persona:          &persona,
		DataSource:       &ds,
		DataSourceConfig: map[string]any{"filename": "leads.csv"},
	}

	clone := user.Clone()
	require.Equal(t, user, clone)

	// 改写克隆不影响原记录
	*clone.Persona = PersonaMarketing
	clone.DataSourceConfig["filename"] = "other.csv"

	assert.Equal(t, PersonaSales, *user.Persona)
	assert.Equal(t, "leads.csv", user.DataSourceConfig["filename"])
}
