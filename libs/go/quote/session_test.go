package quote

import (
	"sync"
	"testing"
	"time"

	"github.com/handyline/handyline-api/libs/go/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstItem(t *testing.T, s *Session, kind business.SectionKind) LineItem {
	t.Helper()
	for _, sec := range s.Snapshot().Sections {
		if sec.Kind == kind {
			require.NotEmpty(t, sec.Items)
			return sec.Items[0]
		}
	}
	t.Fatalf("section %s missing", kind)
	return LineItem{}
}

func TestNewSessionHasOneItemPerSection(t *testing.T) {
	s := NewSession()
	snap := s.Snapshot()

	require.Len(t, snap.Sections, 3)
	for i, kind := range business.SectionKinds {
		assert.Equal(t, kind, snap.Sections[i].Kind)
		require.Len(t, snap.Sections[i].Items, 1)
		assert.NotEmpty(t, snap.Sections[i].Items[0].ID)
		assert.True(t, snap.Sections[i].Items[0].Total.IsZero())
	}
}

func TestRemoveLastItemIsNoop(t *testing.T) {
	s := NewSession()
	only := firstItem(t, s, business.SectionLabor)

	for i := 0; i < 5; i++ {
		removed, err := s.RemoveItem(business.SectionLabor, only.ID)
		require.NoError(t, err)
		assert.False(t, removed)
	}
	assert.Len(t, s.Snapshot().Sections[0].Items, 1)

	added, err := s.AddItem(business.SectionLabor, "second")
	require.NoError(t, err)
	removed, err := s.RemoveItem(business.SectionLabor, only.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	items := s.Snapshot().Sections[0].Items
	require.Len(t, items, 1)
	assert.Equal(t, added.ID, items[0].ID)
}

func TestItemErrors(t *testing.T) {
	s := NewSession()

	_, err := s.AddItem("plumbing", "x")
	assert.ErrorIs(t, err, ErrUnknownSection)

	_, err = s.RemoveItem(business.SectionMaterials, "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = s.UpdateRawInput(business.SectionMaterials, "missing", "x")
	assert.ErrorIs(t, err, ErrItemNotFound)

	item := firstItem(t, s, business.SectionMaterials)
	_, err = s.BeginEnhancement(business.SectionMaterials, item.ID, nil)
	assert.ErrorIs(t, err, ErrEmptyRawInput)
}

func TestEnhancementLifecycle(t *testing.T) {
	s := NewSession()
	item := firstItem(t, s, business.SectionLabor)
	_, err := s.UpdateRawInput(business.SectionLabor, item.ID, "patch drywall")
	require.NoError(t, err)

	ticket, err := s.BeginEnhancement(business.SectionLabor, item.ID, []string{"https://cdn/x.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "patch drywall", ticket.RawInput)
	assert.Equal(t, []string{"https://cdn/x.jpg"}, ticket.AttachmentURLs)

	_, err = s.BeginEnhancement(business.SectionLabor, item.ID, nil)
	assert.ErrorIs(t, err, ErrEnhancementInFlight)
	assert.True(t, firstItem(t, s, business.SectionLabor).Pending)

	applied := s.CompleteEnhancement(ticket, Extraction{
		Content: "Patch and finish drywall.",
		Total:   decimal.NewFromInt(180),
		Status:  TotalFound,
	})
	require.True(t, applied)

	got := firstItem(t, s, business.SectionLabor)
	assert.False(t, got.Pending)
	assert.Equal(t, "Patch and finish drywall.", got.GeneratedContent)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(180)))
	assert.Equal(t, TotalFound, got.TotalStatus)

	t.Run("failure keeps previous total and content", func(t *testing.T) {
		ticket, err := s.BeginEnhancement(business.SectionLabor, item.ID, nil)
		require.NoError(t, err)
		require.True(t, s.FailEnhancement(ticket, "generation service unavailable"))

		got := firstItem(t, s, business.SectionLabor)
		assert.False(t, got.Pending)
		assert.Equal(t, "generation service unavailable", got.LastError)
		assert.True(t, got.Total.Equal(decimal.NewFromInt(180)))
		assert.Equal(t, "Patch and finish drywall.", got.GeneratedContent)
	})

	t.Run("retry clears last error", func(t *testing.T) {
		ticket, err := s.BeginEnhancement(business.SectionLabor, item.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, firstItem(t, s, business.SectionLabor).LastError)
		require.True(t, s.CompleteEnhancement(ticket, Extraction{Content: "v2", Total: decimal.NewFromInt(200), Status: TotalFound}))
	})

	t.Run("stale ticket is ignored", func(t *testing.T) {
		assert.False(t, s.CompleteEnhancement(ticket, Extraction{Content: "stale", Total: decimal.NewFromInt(1)}))
		assert.Equal(t, "v2", firstItem(t, s, business.SectionLabor).GeneratedContent)
	})
}

func TestResultForRemovedItemIsDropped(t *testing.T) {
	s := NewSession()
	keep := firstItem(t, s, business.SectionEquipment)
	doomed, err := s.AddItem(business.SectionEquipment, "rent a scissor lift")
	require.NoError(t, err)

	ticket, err := s.BeginEnhancement(business.SectionEquipment, doomed.ID, nil)
	require.NoError(t, err)

	removed, err := s.RemoveItem(business.SectionEquipment, doomed.ID)
	require.NoError(t, err)
	require.True(t, removed)

	assert.False(t, s.CompleteEnhancement(ticket, Extraction{Content: "lift", Total: decimal.NewFromInt(400), Status: TotalFound}))
	assert.False(t, s.FailEnhancement(ticket, "late"))

	items := s.Snapshot().Sections[2].Items
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)
	assert.Empty(t, items[0].GeneratedContent)
}

func TestPendingStateIsPerItem(t *testing.T) {
	s := NewSession()
	a := firstItem(t, s, business.SectionLabor)
	b := firstItem(t, s, business.SectionMaterials)
	c, err := s.AddItem(business.SectionLabor, "second labor row")
	require.NoError(t, err)

	for _, ref := range []struct {
		kind business.SectionKind
		id   string
	}{{business.SectionLabor, a.ID}, {business.SectionMaterials, b.ID}} {
		_, err := s.UpdateRawInput(ref.kind, ref.id, "work")
		require.NoError(t, err)
	}

	ticketB, err := s.BeginEnhancement(business.SectionMaterials, b.ID, nil)
	require.NoError(t, err)
	require.True(t, s.CompleteEnhancement(ticketB, Extraction{Content: "drywall sheets", Total: decimal.NewFromInt(90), Status: TotalFound}))

	ticketA, err := s.BeginEnhancement(business.SectionLabor, a.ID, nil)
	require.NoError(t, err)

	gotB, err := s.Item(business.SectionMaterials, b.ID)
	require.NoError(t, err)
	gotC, err := s.Item(business.SectionLabor, c.ID)
	require.NoError(t, err)
	assert.False(t, gotB.Pending)
	assert.False(t, gotC.Pending)

	require.True(t, s.FailEnhancement(ticketA, "timeout"))

	gotB, err = s.Item(business.SectionMaterials, b.ID)
	require.NoError(t, err)
	assert.True(t, gotB.Total.Equal(decimal.NewFromInt(90)))
	assert.Empty(t, gotB.LastError)
}

func TestConcurrentEnhancements(t *testing.T) {
	s := NewSession()
	var ids []string
	for i := 0; i < 20; i++ {
		item, err := s.AddItem(business.SectionMaterials, "item")
		require.NoError(t, err)
		ids = append(ids, item.ID)
	}

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			ticket, err := s.BeginEnhancement(business.SectionMaterials, id, nil)
			if err != nil {
				t.Error(err)
				return
			}
			if i%2 == 0 {
				s.CompleteEnhancement(ticket, Extraction{Content: "ok", Total: decimal.NewFromInt(int64(i)), Status: TotalFound})
			} else {
				s.FailEnhancement(ticket, "boom")
			}
		}(i, id)
	}
	wg.Wait()

	for _, item := range s.Snapshot().Sections[1].Items[1:] {
		assert.False(t, item.Pending)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := NewSession()
	snap := s.Snapshot()
	snap.Sections[0].Items[0].RawInput = "mutated"

	assert.Empty(t, firstItem(t, s, business.SectionLabor).RawInput)
}

func TestInvoiceSections(t *testing.T) {
	s := NewSession()
	item := firstItem(t, s, business.SectionLabor)
	_, err := s.UpdateRawInput(business.SectionLabor, item.ID, "x")
	require.NoError(t, err)
	ticket, err := s.BeginEnhancement(business.SectionLabor, item.ID, nil)
	require.NoError(t, err)
	s.CompleteEnhancement(ticket, Extraction{Content: "Labor line", Total: decimal.NewFromInt(500), Status: TotalFound})

	sections := s.Snapshot().InvoiceSections()
	require.Len(t, sections, 3)
	assert.Equal(t, business.SectionLabor, sections[0].Type)
	assert.Equal(t, "Labor line", sections[0].Items[0].Content)
	assert.Empty(t, sections[1].Items[0].Content)
}

func TestSessionStore(t *testing.T) {
	st := NewSessionStore(time.Minute, 0)
	defer st.Close()

	current := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return current }

	s, err := st.Create()
	require.NoError(t, err)
	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = st.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	current = current.Add(30 * time.Second)
	assert.Equal(t, 0, st.EvictIdle())

	current = current.Add(2 * time.Minute)
	assert.Equal(t, 1, st.EvictIdle())
	assert.Equal(t, 0, st.Len())

	s2, err := st.Create()
	require.NoError(t, err)
	st.Delete(s2.ID)
	_, err = st.Get(s2.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_MaxSessions(t *testing.T) {
	st := NewSessionStore(time.Minute, 0, WithMaxSessions(2))
	defer st.Close()

	current := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return current }

	_, err := st.Create()
	require.NoError(t, err)
	_, err = st.Create()
	require.NoError(t, err)

	_, err = st.Create()
	assert.ErrorIs(t, err, ErrSessionLimit)
	assert.Equal(t, 2, st.Len())

	// Idle sessions make room for new ones.
	current = current.Add(2 * time.Minute)
	_, err = st.Create()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Len())
}

func TestSessionStore_MaxItemsPerSection(t *testing.T) {
	st := NewSessionStore(time.Minute, 0, WithMaxItemsPerSection(3))
	defer st.Close()

	s, err := st.Create()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := s.AddItem(business.SectionMaterials, "")
		require.NoError(t, err)
	}
	_, err = s.AddItem(business.SectionMaterials, "one too many")
	assert.ErrorIs(t, err, ErrSectionFull)

	_, err = s.AddItem(business.SectionLabor, "other sections are independent")
	assert.NoError(t, err)
}
