package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/stretchr/testify/assert"
)

func TestConfigString(t *testing.T) {
	testCases := []struct {
		name     string
		conf     Config
		expected string
	}{
		{
			name:     "defaults",
			conf:     Config{},
			expected: "host=127.0.0.1 dbname=postgres port=5432 sslmode=prefer",
		},
		{
			name:     "credentials",
			conf:     Config{Host: "db", Port: "6432", DBName: "auction", SSLMode: "disable", User: "clerk", Password: "secret"},
			expected: "host=db dbname=auction port=6432 sslmode=disable user=clerk password=secret",
		},
		{
			name:     "url wins",
			conf:     Config{Host: "db", URL: "postgres://clerk@db:5432/auction"},
			expected: "postgres://clerk@db:5432/auction",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.conf.String())
		})
	}
}

func TestQueryTracerLevel(t *testing.T) {
	tracer, ok := Config{}.QueryTracer().(*tracelog.TraceLog)
	assert.True(t, ok)
	assert.Equal(t, tracelog.LogLevelError, tracer.LogLevel)

	tracer, ok = Config{Debug: true}.QueryTracer().(*tracelog.TraceLog)
	assert.True(t, ok)
	assert.Equal(t, tracelog.LogLevelTrace, tracer.LogLevel)
}
