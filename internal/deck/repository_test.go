package deck_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wojakkk/studypal/internal/deck"
	mock_storage "github.com/wojakkk/studypal/internal/mocks/storage"
	"github.com/wojakkk/studypal/internal/storage"
)

func TestRepositoryLoad(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		readErr error
		want    func(t *testing.T, d *deck.Deck)
		wantErr bool
	}{
		{
			name:    "missing storage yields a fresh deck",
			readErr: storage.ErrNotFound,
			want: func(t *testing.T, d *deck.Deck) {
				assert.Equal(t, 1, d.NextID)
				assert.Empty(t, d.Cards)
			},
		},
		{
			name: "well formed deck round trips",
			data: []byte(`{
				"next_id": 3,
				"cards": [
					{"id": 1, "question": "q1", "answer": "a1", "repetitions": 2, "interval": 6, "ease": 2.36, "due": "2026-04-07", "created": "2026-03-01", "last_review": "2026-04-01"},
					{"id": 2, "question": "q2", "answer": "a2", "ease": 2.5, "due": "2026-04-01", "created": "2026-04-01"}
				]
			}`),
			want: func(t *testing.T, d *deck.Deck) {
				require.Len(t, d.Cards, 2)
				assert.Equal(t, 3, d.NextID)
				assert.Equal(t, 2, d.Cards[0].Repetitions)
				assert.Equal(t, "2026-04-01", d.Cards[0].LastReview)
				assert.Empty(t, d.Cards[1].LastReview)
			},
		},
		{
			name: "absent fields take their documented defaults",
			data: []byte(`{"cards": [{"id": 1, "question": "q", "answer": "a"}]}`),
			want: func(t *testing.T, d *deck.Deck) {
				require.Len(t, d.Cards, 1)
				card := d.Cards[0]
				assert.Equal(t, 0, card.Repetitions)
				assert.Equal(t, 0, card.Interval)
				assert.Equal(t, deck.DefaultEase, card.Ease)
				assert.Empty(t, card.Due)
				assert.True(t, card.IsDue(time.Now()), "missing due means immediately due")
				assert.Equal(t, 2, d.NextID, "next_id defaults to len(cards)+1")
			},
		},
		{
			name:    "missing id is a hard error",
			data:    []byte(`{"next_id": 2, "cards": [{"question": "q", "answer": "a"}]}`),
			wantErr: true,
		},
		{
			name:    "corrupt content is fatal",
			data:    []byte(`{"next_id": `),
			wantErr: true,
		},
		{
			name:    "read failures other than not-found propagate",
			readErr: errors.New("disk on fire"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			st := mock_storage.NewMockStorage(ctrl)
			st.EXPECT().Read("deck.json").Return(tt.data, tt.readErr)

			got, err := deck.NewRepository(st, "deck.json").Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.want(t, got)
		})
	}
}

func TestRepositorySave(t *testing.T) {
	t.Run("writes the serialized deck through storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mock_storage.NewMockStorage(ctrl)

		var written []byte
		st.EXPECT().Write("deck.json", gomock.Any()).DoAndReturn(func(_ string, data []byte) error {
			written = data
			return nil
		})

		d := deck.NewDeck()
		_, err := d.Add("q", "a", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		require.NoError(t, deck.NewRepository(st, "deck.json").Save(d))
		assert.Contains(t, string(written), `"next_id": 2`)
		assert.Contains(t, string(written), `"due": "2026-04-01"`)
	})

	t.Run("write failure is surfaced as a durability error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mock_storage.NewMockStorage(ctrl)
		st.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("no space left"))

		err := deck.NewRepository(st, "deck.json").Save(deck.NewDeck())
		assert.ErrorContains(t, err, "no space left")
	})
}

// save(load(x)) == x through the real file backend, including a card whose
// due date is unparsable.
func TestRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	repo := deck.NewRepository(storage.NewFileStorage(), path)

	original := &deck.Deck{
		NextID: 5,
		Cards: []deck.Card{
			{ID: 1, Question: "q1", Answer: "a1", Repetitions: 3, Interval: 15, Ease: 2.7, Due: "2026-05-01", Created: "2026-01-01", LastReview: "2026-04-16"},
			{ID: 4, Question: "q4", Answer: "a4", Ease: 2.5, Due: "broken-date", Created: "2026-02-02"},
		},
	}
	require.NoError(t, repo.Save(original))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	require.NoError(t, repo.Save(loaded))
	reloaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, original, reloaded)
}
