package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/repository"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		want   entities.Contact
		wantOK bool
	}{
		{"Alice: 0123456789", entities.Contact{Name: "Alice", Number: "0123456789"}, true},
		{"Bob - 1234567890", entities.Contact{Name: "Bob", Number: "1234567890"}, true},
		{"Carol | 2345678901", entities.Contact{Name: "Carol", Number: "2345678901"}, true},
		{"Dave,3456789012", entities.Contact{Name: "Dave", Number: "3456789012"}, true},
		{"Mary-Jane: 4567890123", entities.Contact{Name: "Mary-Jane", Number: "4567890123"}, true},
		{"5678901234", entities.Contact{Name: "Contact 1", Number: "5678901234"}, true},
		{"6789012345 Eve Smith", entities.Contact{Name: "Eve Smith", Number: "6789012345"}, true},
		{"  ", entities.Contact{}, false},
		{"just words", entities.Contact{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseLine(tt.line, "Contact 1")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContactServiceAdd(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	c, err := env.contactSvc.Add(ctx, testPlayer, "  Alice ", "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.Name)

	_, err = env.contactSvc.Add(ctx, testPlayer, "ALICE", "1111111111")
	require.ErrorIs(t, err, ErrDuplicateName)

	_, err = env.contactSvc.Add(ctx, testPlayer, "Bob", "0123456789")
	require.ErrorIs(t, err, ErrDuplicateNumber)

	_, err = env.contactSvc.Add(ctx, testPlayer, "Bob", "12345")
	require.ErrorIs(t, err, ErrInvalidNumber)

	_, err = env.contactSvc.Add(ctx, testPlayer, "Bob", "-123456789")
	require.ErrorIs(t, err, ErrInvalidNumber)

	_, err = env.contactSvc.Add(ctx, testPlayer, " ", "2222222222")
	require.ErrorIs(t, err, ErrEmptyName)

	contacts, err := env.contactSvc.List(ctx, testPlayer)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestContactServiceDuplicateNameIgnoresCaseOnly(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.contactSvc.Add(ctx, testPlayer, "Ann Lee", "0123456789")
	require.NoError(t, err)

	_, err = env.contactSvc.Add(ctx, testPlayer, " ann lee ", "1111111111")
	require.ErrorIs(t, err, ErrDuplicateName)

	_, err = env.contactSvc.Add(ctx, testPlayer, "Ann  Lee", "2222222222")
	require.NoError(t, err)

	contacts, err := env.contactSvc.List(ctx, testPlayer)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

func TestContactServiceDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.contacts.SaveAll(ctx, testPlayer, sampleContacts()))

	removed, err := env.contactSvc.Delete(ctx, testPlayer, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bob", removed.Name)

	_, err = env.contactSvc.Delete(ctx, testPlayer, 10)
	require.ErrorIs(t, err, ErrContactNotFound)

	contacts, err := env.contactSvc.List(ctx, testPlayer)
	require.NoError(t, err)
	assert.Len(t, contacts, 3)
	assert.Equal(t, "Carol", contacts[1].Name)
}

func TestContactServiceImport(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.contacts.SaveAll(ctx, testPlayer, sampleContacts()[:1]))

	text := strings.Join([]string{
		"Zed: 9990001111",
		"alice - 9990002222", // duplicate name
		"9990003333",
		"9990004444",
		"Bad: 123",
		"",
		"9990005555 Yan",
	}, "\n")

	res, err := env.contactSvc.Import(ctx, testPlayer, text)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Added)
	assert.Equal(t, 2, res.Failed)

	contacts, err := env.contactSvc.List(ctx, testPlayer)
	require.NoError(t, err)
	require.Len(t, contacts, 5)
	assert.Equal(t, "Contact 1", contacts[2].Name)
	assert.Equal(t, "Contact 2", contacts[3].Name)
	assert.Equal(t, "Yan", contacts[4].Name)

	b, err := env.backups.Get(ctx, testPlayer)
	require.NoError(t, err)
	assert.Len(t, b.Contacts, 5)
}

func TestContactServiceImportNothingValid(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.contactSvc.Import(context.Background(), testPlayer, "hello\nworld")
	require.ErrorIs(t, err, ErrNoContactsParsed)
	assert.Equal(t, 2, res.Failed)

	_, err = env.backups.Get(context.Background(), testPlayer)
	require.ErrorIs(t, err, repository.ErrBackupNotFound)
}

func TestContactServiceAddRandom(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.contactSvc.AddRandom(ctx, testPlayer, 0)
	require.ErrorIs(t, err, ErrInvalidCount)
	_, err = env.contactSvc.AddRandom(ctx, testPlayer, 11)
	require.ErrorIs(t, err, ErrInvalidCount)

	added, err := env.contactSvc.AddRandom(ctx, testPlayer, 5)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, added, 1)
	assert.LessOrEqual(t, added, 5)

	contacts, err := env.contactSvc.List(ctx, testPlayer)
	require.NoError(t, err)
	assert.Len(t, contacts, added)
	for _, c := range contacts {
		assert.True(t, entities.IsPhoneNumber(c.Number))
	}
}

func TestContactServiceExport(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.contactSvc.Export(ctx, testPlayer)
	require.ErrorIs(t, err, ErrContactNotFound)

	require.NoError(t, env.contacts.SaveAll(ctx, testPlayer, sampleContacts()[:2]))
	text, err := env.contactSvc.Export(ctx, testPlayer)
	require.NoError(t, err)
	assert.Equal(t, "Alice: 1234567890\nBob: 2345678901", text)

	_, err = env.backups.Get(ctx, testPlayer)
	assert.NoError(t, err)
}
