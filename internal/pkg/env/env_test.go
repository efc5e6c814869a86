package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvDefault(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("SNEEZEBOT_TEST_MISSING", "fallback"))
}

func TestGetEnvFromOS(t *testing.T) {
	t.Setenv("SNEEZEBOT_TEST_KEY", "from-os")
	assert.Equal(t, "from-os", GetEnv("SNEEZEBOT_TEST_KEY", "fallback"))
}

func TestGetAdminIDs(t *testing.T) {
	t.Setenv("ADMIN_IDS", "100, 200,abc, ,300")

	admins := GetAdminIDs()
	assert.Len(t, admins, 3)
	assert.Contains(t, admins, int64(100))
	assert.Contains(t, admins, int64(200))
	assert.Contains(t, admins, int64(300))
}

func TestGetAdminIDsEmpty(t *testing.T) {
	t.Setenv("ADMIN_IDS", "")
	assert.Empty(t, GetAdminIDs())
}
