package model

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func TestUser_CreatedAtSetByGorm(t *testing.T) {
	s, err := schema.Parse(&User{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	f := s.LookUpField("created_at")
	if f == nil {
		t.Fatal("created_at field missing")
	}
	if f.HasDefaultValue {
		t.Error("created_at must not be database-defaulted, or inserts skip it")
	}
	if f.AutoCreateTime == 0 {
		t.Error("created_at should be filled on create")
	}
	if s.Table != "ugcc_registration" {
		t.Errorf("unexpected table %q", s.Table)
	}
}

func TestUser_ApplyProfileKeepsImmutableFields(t *testing.T) {
	u := &User{ID: 3, PasswordHash: "h", Email: "a@x.com"}
	u.ApplyProfile(&User{ID: 9, PasswordHash: "other", Email: "b@x.com", Department: "Science"})

	if u.ID != 3 || u.PasswordHash != "h" {
		t.Errorf("immutable fields changed: %+v", u)
	}
	if u.Email != "b@x.com" || u.Department != "Science" {
		t.Errorf("profile not applied: %+v", u)
	}
}
