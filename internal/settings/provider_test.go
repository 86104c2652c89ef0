package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_StartsWithDefaults(t *testing.T) {
	p := NewProvider(nil, quietLogger())
	assert.Equal(t, Defaults(), p.Current())
}

func TestProvider_LoadReadsStore(t *testing.T) {
	kv := newMemKV()
	kv.data[Key] = `{"showHints":true,"shuffleQuestions":false}`
	p := NewProvider(NewStore(kv, quietLogger()), quietLogger())

	got := p.Load(context.Background())
	assert.True(t, got.ShowHints)
	assert.False(t, got.ShuffleQuestions)
	assert.Equal(t, got, p.Current())
}

func TestProvider_WriteThrough(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv, quietLogger())
	p := NewProvider(store, quietLogger())
	ctx := context.Background()

	p.SetShowHints(ctx, true)
	p.SetShuffleQuestions(ctx, false)
	p.SetDarkMode(ctx, true)

	assert.Equal(t, 3, kv.sets, "each mutation persists immediately")
	assert.Equal(t, Settings{ShowHints: true, ShuffleQuestions: false, DarkMode: true}, store.Load(ctx))
}

func TestProvider_Toggle(t *testing.T) {
	p := NewProvider(NewStore(newMemKV(), quietLogger()), quietLogger())
	ctx := context.Background()

	assert.True(t, p.Toggle(ctx, FieldShowHints).ShowHints)
	assert.False(t, p.Toggle(ctx, FieldShowHints).ShowHints)
	assert.Equal(t, Defaults(), p.Toggle(ctx, "bogus"))
}

func TestProvider_FailedSaveKeepsMemory(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("no space left")
	p := NewProvider(NewStore(kv, quietLogger()), quietLogger())

	got := p.SetShowHints(context.Background(), true)
	assert.True(t, got.ShowHints)
	assert.True(t, p.Current().ShowHints)
	_, stored := kv.data[Key]
	assert.False(t, stored)
}

func TestProvider_Replace(t *testing.T) {
	kv := newMemKV()
	p := NewProvider(NewStore(kv, quietLogger()), quietLogger())

	want := Settings{DarkMode: true}
	require.Equal(t, want, p.Replace(context.Background(), want))
	assert.JSONEq(t, `{"showHints":false,"shuffleQuestions":false,"darkMode":true}`, kv.data[Key])
}
