package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapping(t *testing.T) {
	t.Run("renamed column resolves to its source", func(t *testing.T) {
		m := NewMapping(map[string]string{"nombre": "customer_name", "correo": "email"})
		assert.Equal(t, "nombre", m.SourceFor("customer_name"))
		assert.Equal(t, "correo", m.SourceFor("email"))
	})

	t.Run("unmapped target falls back to its own name", func(t *testing.T) {
		m := NewMapping(map[string]string{"nombre": "customer_name"})
		assert.Equal(t, "phone", m.SourceFor("phone"))
	})

	t.Run("nil rename map", func(t *testing.T) {
		m := NewMapping(nil)
		assert.Equal(t, "customer_name", m.SourceFor("customer_name"))
	})
}
