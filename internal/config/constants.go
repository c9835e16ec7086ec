// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "vocab-drill"
	AppVersion = "0.3.0"
)

// データベースドライバ
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// デフォルト設定値
const (
	DefaultDatabaseDriver = DriverPostgres
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultDailyGoal      = 20
	DefaultMaxDailyGoal   = 200
	// sqlite ドライバで URL 未指定のときに使うファイル
	DefaultSQLitePath = "vocab_drill.db"
)
