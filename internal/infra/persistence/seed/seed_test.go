package seed

import (
	"os"
	"path/filepath"
	"testing"

	"florist/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	body := `
users:
  - id: "6f1c2a52-8a16-4a4e-9d0f-3f6c1b1d7e01"
    name: Asha Rao
    email: asha@example.com
products:
  - id: "0d3b8f8e-1c2a-4b8f-9f5e-6a2b7c9d0e11"
    name: Red Roses
    price: "499.50"
    isActive: true
  - id: "0d3b8f8e-1c2a-4b8f-9f5e-6a2b7c9d0e12"
    name: Orchid Vase
    pricing:
      small: "800"
      large: "1800"
    isActive: true
zones:
  - zoneId: blr-central
    name: Bengaluru Central
    pincodes: ["560001", "560002"]
    pricing:
      fixedTime: "49"
      midnight: "199"
      express: "149"
    isActive: true
`
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	data, err := Load(path)
	require.NoError(t, err)

	require.Len(t, data.Users, 1)
	require.Len(t, data.Products, 2)
	require.Len(t, data.Zones, 1)
	assert.Equal(t, entity.Money(49950), data.Products[0].Price)
	assert.Equal(t, entity.Rupees(1800), data.Products[1].Pricing[entity.SizeLarge])
	assert.Equal(t, entity.Rupees(49), data.Zones[0].Pricing.FixedTime)
	assert.Equal(t, []string{"560001", "560002"}, data.Zones[0].Pincodes)
}

func TestLoad_RejectsUnknownSize(t *testing.T) {
	body := `
products:
  - id: "0d3b8f8e-1c2a-4b8f-9f5e-6a2b7c9d0e12"
    name: Orchid Vase
    pricing:
      huge: "800"
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsBadAmount(t *testing.T) {
	body := `
zones:
  - zoneId: blr
    pricing:
      fixedTime: "forty"
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
