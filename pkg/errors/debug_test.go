package errors

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestDumpCapturesPostgresDetails(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "carts_user_id_key", TableName: "carts", Message: "duplicate key value"}
	err := Wrap(CodeDependency, fmt.Errorf("create cart: %w", pgErr), "create cart")

	d := Dump(err)
	if d.Code != CodeDependency {
		t.Fatalf("expected dependency code, got %s", d.Code)
	}
	if d.PGCode != "23505" || d.PGConstraint != "carts_user_id_key" || d.PGTable != "carts" {
		t.Fatalf("unexpected pg fields: %+v", d)
	}
	if len(d.Chain) < 3 {
		t.Fatalf("expected the full wrap chain, got %v", d.Chain)
	}
}

func TestDumpCapturesLibPQErrors(t *testing.T) {
	d := Dump(&pq.Error{Code: "23503", Constraint: "cart_items_variant_id_fkey", Table: "cart_items"})
	if d.PGCode != "23503" || d.PGConstraint != "cart_items_variant_id_fkey" {
		t.Fatalf("unexpected pq fields: %+v", d)
	}
}

func TestDumpIncludesKind(t *testing.T) {
	d := Dump(NewKind(CodeNotFound, Kind("CART_NOT_FOUND"), "cart not found"))
	if d.Kind != "CART_NOT_FOUND" || d.Code != CodeNotFound {
		t.Fatalf("unexpected dump %+v", d)
	}
	if empty := Dump(nil); empty.TopMessage != "" {
		t.Fatalf("nil error should produce empty dump")
	}
}

func TestDumpFieldsOmitEmptyDriverDetails(t *testing.T) {
	fields := Dump(NewKind(CodeStateConflict, Kind("CART_ITEM_UNAVAILABLE"), "variant unavailable")).Fields()
	if fields["error_kind"] != Kind("CART_ITEM_UNAVAILABLE") || fields["error_retryable"] != false {
		t.Fatalf("unexpected fields %v", fields)
	}
	if _, ok := fields["pg_code"]; ok {
		t.Fatalf("pg fields should be absent without a driver error: %v", fields)
	}
}

func TestDumpFieldsCarryDriverDetails(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "carts_session_id_key", TableName: "carts"}
	fields := Dump(Wrap(CodeDependency, pgErr, "create cart")).Fields()
	if fields["pg_code"] != "23505" || fields["pg_constraint"] != "carts_session_id_key" {
		t.Fatalf("unexpected pg fields %v", fields)
	}
	if _, ok := fields["pg_column"]; ok {
		t.Fatalf("empty pg_column should be omitted: %v", fields)
	}
	if fields["error_retryable"] != true {
		t.Fatalf("dependency errors are retryable: %v", fields)
	}
}
