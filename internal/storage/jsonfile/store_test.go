package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bazaardirectory/internal/domain"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestStore_Load_NeverWritten(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	var records []record
	err = s.Load(context.Background(), "events", &records)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestStore_Load_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "events.json"), nil, 0o644))
	s, err := New(dir)
	require.NoError(t, err)

	var records []record
	err = s.Load(context.Background(), "events", &records)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestStore_SaveLoad_Roundtrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	in := []record{{ID: "1", Name: "spring market"}, {ID: "2", Name: "night bazaar"}}
	require.NoError(t, s.Save(ctx, "events", in))

	var out []record
	require.NoError(t, s.Load(ctx, "events", &out))
	require.Equal(t, in, out)
}

func TestStore_Save_ReplacesWholeCollection(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "events", []record{{ID: "1"}, {ID: "2"}, {ID: "3"}}))
	require.NoError(t, s.Save(ctx, "events", []record{{ID: "2"}}))

	var out []record
	require.NoError(t, s.Load(ctx, "events", &out))
	require.Equal(t, []record{{ID: "2"}}, out)
}

func TestStore_Load_CorruptContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "events.json"), []byte("{not json"), 0o644))
	s, err := New(dir)
	require.NoError(t, err)

	var records []record
	err = s.Load(context.Background(), "events", &records)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrCorrupt)
	require.NotErrorIs(t, err, domain.ErrStorage)
}

func TestStore_CollectionsAreIndependent(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "events", []record{{ID: "e1"}}))
	require.NoError(t, s.Save(ctx, "booths", []record{{ID: "b1"}, {ID: "b2"}}))

	var events, booths []record
	require.NoError(t, s.Load(ctx, "events", &events))
	require.NoError(t, s.Load(ctx, "booths", &booths))
	require.Len(t, events, 1)
	require.Len(t, booths, 2)
}
