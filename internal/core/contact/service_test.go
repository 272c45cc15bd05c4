package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) Create(ctx context.Context, msg *Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockContactRepository) List(ctx context.Context) ([]*Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Message), args.Error(1)
}

func TestSubmit_AllFieldsRequired(t *testing.T) {
	repo := new(mockContactRepository)
	svc := NewContactService(repo)

	cases := [][4]string{
		{"", "sam@example.com", "Question", "Hello"},
		{"Sam", "", "Question", "Hello"},
		{"Sam", "sam@example.com", "  ", "Hello"},
		{"Sam", "sam@example.com", "Question", ""},
	}
	for _, c := range cases {
		_, err := svc.Submit(context.Background(), c[0], c[1], c[2], c[3])
		assert.ErrorIs(t, err, ErrAllFieldsRequired)
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_StoresTrimmedMessage(t *testing.T) {
	repo := new(mockContactRepository)
	svc := NewContactService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *Message) bool {
		return m.FullName == "Sam" && m.Subject == "Question"
	})).Return(nil)

	msg, err := svc.Submit(context.Background(), " Sam ", "sam@example.com", "Question", "Hello there")
	require.NoError(t, err)
	assert.Equal(t, "Hello there", msg.Body)

	repo.AssertExpectations(t)
}
