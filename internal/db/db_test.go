package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"dormhub/internal/models"
)

func TestSeedAdminIdempotent(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))

	require.NoError(t, SeedAdmin(gdb))
	require.NoError(t, SeedAdmin(gdb))

	var admins []models.User
	require.NoError(t, gdb.Where("email = ?", seedAdminEmail).Find(&admins).Error)
	require.Len(t, admins, 1)

	admin := admins[0]
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(seedAdminPassword)))
}
