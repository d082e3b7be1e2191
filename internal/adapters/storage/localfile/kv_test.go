package localfile

import (
	"context"
	"testing"
)

func TestKV_RoundTrip(t *testing.T) {
	kv, err := NewKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewKV error: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "medecho_clinics"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "medecho_clinics", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	b, ok, err := kv.Get(ctx, "medecho_clinics")
	if err != nil || !ok {
		t.Fatalf("Get error: ok=%v err=%v", ok, err)
	}
	if string(b) != `[{"id":"1"}]` {
		t.Fatalf("unexpected bytes: %s", b)
	}

	if err := kv.Delete(ctx, "medecho_clinics"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "medecho_clinics"); ok {
		t.Fatalf("expected key gone after delete")
	}

	// delete idempotente
	if err := kv.Delete(ctx, "medecho_clinics"); err != nil {
		t.Fatalf("Delete #2 error: %v", err)
	}
}

func TestKV_KeysDoNotCollide(t *testing.T) {
	kv, err := NewKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewKV error: %v", err)
	}
	ctx := context.Background()

	_ = kv.Set(ctx, "medecho_doctors", []byte(`[1]`))
	_ = kv.Set(ctx, "medecho_clinics", []byte(`[2]`))

	b, _, _ := kv.Get(ctx, "medecho_doctors")
	if string(b) != `[1]` {
		t.Fatalf("keys collided: %s", b)
	}
}
