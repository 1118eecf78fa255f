package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"dbc/backend/internal/db"
	"dbc/backend/internal/model"
	"dbc/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce 确保 snowflake 在所有并行测试中只初始化一次
var snowflakeOnce sync.Once

// NewTestDB 创建内存 SQLite 数据库并执行所有迁移
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// sync.Once 内无法使用 t.Fatalf，改用 panic
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// 每个测试使用唯一的数据库名称以避免冲突
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, time.Now().UnixNano())
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// timeVal 将时间指针转换为 RFC3339Nano 格式的字符串，nil 返回 nil
func timeVal(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SeedDomain 插入测试域名数据并返回其 ID；CreatedAt 为零值时使用当前时间
func SeedDomain(t *testing.T, db *sql.DB, d model.SiteDomain) int64 {
	t.Helper()

	if d.ID == 0 {
		d.ID = snowflake.NextID()
	}
	if d.Template == "" {
		d.Template = model.TemplateCard
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	created := d.CreatedAt.UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO site_domains (id, user_id, template, domain, verified, verified_at, verification_token, txt_verified_at, last_checked_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.UserID, d.Template, d.Domain, boolToInt(d.Verified), timeVal(d.VerifiedAt), ptrVal(d.VerificationToken),
		timeVal(d.TXTVerifiedAt), timeVal(d.LastCheckedAt), created, created,
	)
	if err != nil {
		t.Fatalf("failed to seed domain: %v", err)
	}

	return d.ID
}
