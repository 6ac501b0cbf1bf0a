package server

import (
	"testing"

	"github.com/MKhiriev/meal-tracker/internal/config"
	"github.com/MKhiriev/meal-tracker/internal/handler"
	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_WithHTTPHandler(t *testing.T) {
	handlers := handler.NewHandlers(nil, nil, &config.StructuredConfig{}, logger.Nop())

	s, err := NewServer(handlers, config.Server{Port: 8000}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestNewHTTPServer_ListenAddress(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Server
		want string
	}{
		{name: "default port", cfg: config.Server{}, want: ":8000"},
		{name: "explicit port", cfg: config.Server{Port: 9090}, want: ":9090"},
		{name: "address overrides port", cfg: config.Server{Address: "localhost:8081", Port: 9090}, want: "localhost:8081"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newHTTPServer(nil, tt.cfg, logger.Nop())
			assert.Equal(t, tt.want, s.server.Addr)
		})
	}
}
