package db

import (
	"context"
	"reflect"

	"gorm.io/gorm"
)

type actorKey struct{}

// WithActor returns a session whose writes are attributed to actor via the
// CreatedBy/UpdatedBy audit columns.
func WithActor(g *gorm.DB, actor string) *gorm.DB {
	return g.WithContext(context.WithValue(context.Background(), actorKey{}, actor))
}

// RegisterAuditCallbacks installs write-path hooks that stamp the audit
// actor columns on entities declaring them. Services never touch these
// fields directly.
func RegisterAuditCallbacks(g *gorm.DB) error {
	if err := g.Callback().Create().Before("gorm:create").Register("audit:created_by", stampCreate); err != nil {
		return err
	}
	return g.Callback().Update().Before("gorm:update").Register("audit:updated_by", stampUpdate)
}

func actorFrom(tx *gorm.DB) string {
	if tx.Statement == nil || tx.Statement.Context == nil {
		return ""
	}
	actor, _ := tx.Statement.Context.Value(actorKey{}).(string)
	return actor
}

func stampCreate(tx *gorm.DB) {
	setAuditField(tx, "CreatedBy")
	setAuditField(tx, "UpdatedBy")
}

func stampUpdate(tx *gorm.DB) {
	actor := actorFrom(tx)
	if actor == "" || tx.Statement.Schema == nil {
		return
	}
	if tx.Statement.Schema.LookUpField("UpdatedBy") == nil {
		return
	}
	tx.Statement.SetColumn("UpdatedBy", actor)
}

func setAuditField(tx *gorm.DB, name string) {
	actor := actorFrom(tx)
	if actor == "" || tx.Statement.Schema == nil {
		return
	}
	field := tx.Statement.Schema.LookUpField(name)
	if field == nil {
		return
	}
	switch rv := tx.Statement.ReflectValue; rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			_ = field.Set(tx.Statement.Context, rv.Index(i), actor)
		}
	case reflect.Struct:
		_ = field.Set(tx.Statement.Context, rv, actor)
	}
}
