package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, c Config)
	}{
		{
			name: "正常系: ファイルの値を読み込む",
			yaml: `
database:
  driver: sqlite
  url: "file::memory:"
app:
  daily_goal: 30
  max_daily_goal: 100
server:
  port: ":9090"
`,
			check: func(t *testing.T, c Config) {
				assert.Equal(t, DriverSQLite, c.Database.Driver)
				assert.Equal(t, 30, c.App.DailyGoal)
				assert.Equal(t, 100, c.App.MaxDailyGoal)
				assert.Equal(t, ":9090", c.Server.Port)
				assert.True(t, c.Metrics.Enabled)
			},
		},
		{
			name: "正常系: 未指定の値はデフォルト",
			yaml: "database:\n  driver: sqlite\n",
			check: func(t *testing.T, c Config) {
				assert.Equal(t, DefaultDailyGoal, c.App.DailyGoal)
				assert.Equal(t, DefaultMaxDailyGoal, c.App.MaxDailyGoal)
				assert.Equal(t, DefaultServerPort, c.Server.Port)
				assert.Equal(t, DefaultLogLevel, c.Log.Level)
			},
		},
		{
			name: "正常系: 環境変数が優先される",
			yaml: "database:\n  driver: postgres\n  url: from-file\n",
			env: map[string]string{
				"DATABASE_URL":       "from-env",
				"APP_APP_DAILY_GOAL": "15",
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "from-env", c.Database.URL)
				assert.Equal(t, 15, c.App.DailyGoal)
			},
		},
		{
			name:    "異常系: 未対応のドライバ",
			yaml:    "database:\n  driver: mysql\n",
			wantErr: true,
		},
		{
			name:    "異常系: postgres で URL 未指定",
			yaml:    "database:\n  driver: postgres\n",
			wantErr: true,
		},
		{
			name:    "異常系: daily_goal が上限を超える",
			yaml:    "database:\n  driver: sqlite\napp:\n  daily_goal: 50\n  max_daily_goal: 10\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			Cfg = Config{}
			dir := writeConfig(t, tt.yaml)

			err := LoadConfig(dir)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, Cfg)
		})
	}
}
