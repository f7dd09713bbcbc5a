package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateContactMessage(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo, zap.NewNop())

	msg, err := svc.Create(context.Background(), CreateContactInput{
		Name:    " Jane ",
		Email:   "jane@example.com",
		Subject: "Question",
		Message: "How do applications work?",
	})
	require.NoError(t, err)
	require.Equal(t, "Jane", msg.Name)
	require.False(t, msg.IsRead)
	require.False(t, msg.CreatedAt.IsZero())

	read, err := svc.MarkRead(context.Background(), msg.ID.Hex())
	require.NoError(t, err)
	require.True(t, read.IsRead)
}

func TestCreateContactMessageRequiredFields(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), zap.NewNop())

	for _, in := range []CreateContactInput{
		{Email: "a@b.c", Message: "hi"},
		{Name: "Jane", Message: "hi"},
		{Name: "Jane", Email: "a@b.c", Message: "   "},
	} {
		_, err := svc.Create(context.Background(), in)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	}
}
