package pages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/kuitang/benefits-e2e/internal/errs"
)

func seededSongs() []SongRecord {
	return []SongRecord{
		{Title: "Clair de Lune", Artist: "Debussy", ReleaseDate: "1905-01-01", Price: "0.99"},
		{Title: "So What", Artist: "Miles Davis", ReleaseDate: "1959-08-17", Price: "1.29"},
		{Title: "Hey Jude", Artist: "The Beatles", ReleaseDate: "1968-08-26", Price: "1.29"},
		{Title: "Superstition", Artist: "Stevie Wonder", ReleaseDate: "1972-10-24", Price: "1.19"},
		{Title: "One More Time", Artist: "Daft Punk", ReleaseDate: "2000-11-13", Price: "0.99"},
	}
}

func newLibraryForTest(f *fakePage) *SongLibraryPage {
	return &SongLibraryPage{BasePage: NewBasePage(f, nil, fastTimeouts())}
}

func TestGetSongRowCount(t *testing.T) {
	f := newFakePage()
	f.seedSongTable(seededSongs())
	lib := newLibraryForTest(f)

	count, err := lib.GetSongRowCount()
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestGetSongDataFromRow(t *testing.T) {
	f := newFakePage()
	f.seedSongTable(seededSongs())
	lib := newLibraryForTest(f)

	record, err := lib.GetSongDataFromRow(1)
	require.NoError(t, err)
	assert.Equal(t, SongRecord{
		Title: "So What", Artist: "Miles Davis", ReleaseDate: "1959-08-17", Price: "1.29",
	}, record)
}

func TestGetSongDataFromRowOutOfRange(t *testing.T) {
	f := newFakePage()
	f.seedSongTable(seededSongs())
	lib := newLibraryForTest(f)

	_, err := lib.GetSongDataFromRow(5)
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.CodeOf(err))

	_, err = lib.GetSongDataFromRow(-1)
	require.Error(t, err)
}

func TestGetSongDataFromRowMissingFieldReadsEmpty(t *testing.T) {
	f := newFakePage()
	f.seedSongTable(seededSongs())
	// Simulate a reflow that dropped the price input of row 3.
	delete(f.elements, "#song-table tbody tr:nth-child(3) input.song-price")
	lib := newLibraryForTest(f)

	record, err := lib.GetSongDataFromRow(2)
	require.NoError(t, err, "a missing field is a negative read, not an error")
	assert.Equal(t, "Hey Jude", record.Title)
	assert.Empty(t, record.Price)
}

func TestGetAllSongDataLengthEqualsRowCount(t *testing.T) {
	f := newFakePage()
	f.seedSongTable(seededSongs())
	lib := newLibraryForTest(f)

	records, err := lib.GetAllSongData()
	require.NoError(t, err)

	count, err := lib.GetSongRowCount()
	require.NoError(t, err)
	assert.Len(t, records, count)
	assert.Equal(t, seededSongs(), records)
}

func TestGetAllSongDataEmptyTable(t *testing.T) {
	f := newFakePage()
	f.seedSongTable(nil)
	lib := newLibraryForTest(f)

	records, err := lib.GetAllSongData()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestVerifyAllSongsHaveRequiredFields(t *testing.T) {
	lib := newLibraryForTest(newFakePage())

	t.Run("all valid", func(t *testing.T) {
		result := lib.VerifyAllSongsHaveRequiredFields(seededSongs())
		assert.True(t, result.Valid)
		assert.Empty(t, result.Issues)
	})

	t.Run("missing title flagged", func(t *testing.T) {
		result := lib.VerifyAllSongsHaveRequiredFields([]SongRecord{
			{Title: "", Artist: "A", ReleaseDate: "2020-01-01", Price: "9.99"},
		})
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"Row 0: Missing title"}, result.Issues)
	})

	t.Run("whitespace-only counts as missing", func(t *testing.T) {
		result := lib.VerifyAllSongsHaveRequiredFields([]SongRecord{
			{Title: "Ok", Artist: "   ", ReleaseDate: "2020-01-01", Price: "9.99"},
		})
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"Row 0: Missing artist"}, result.Issues)
	})

	t.Run("multiple rows and fields", func(t *testing.T) {
		result := lib.VerifyAllSongsHaveRequiredFields([]SongRecord{
			{Title: "Ok", Artist: "Ok", ReleaseDate: "2020-01-01", Price: "9.99"},
			{Title: "", Artist: "Ok", ReleaseDate: "", Price: "9.99"},
		})
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"Row 1: Missing title", "Row 1: Missing release date"}, result.Issues)
	})

	t.Run("empty input is valid", func(t *testing.T) {
		result := lib.VerifyAllSongsHaveRequiredFields(nil)
		assert.True(t, result.Valid)
	})
}

// Property: a record set is valid iff no field of any record is blank, and
// the number of issues equals the number of blank fields.
func TestVerifyAllSongsHaveRequiredFieldsProperty(t *testing.T) {
	lib := newLibraryForTest(newFakePage())

	fieldGen := rapid.OneOf(
		rapid.StringMatching(`[A-Za-z0-9 ]{1,12}`),
		rapid.SampledFrom([]string{"", " ", "\t", "   "}),
	)

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "rows")
		records := make([]SongRecord, n)
		blanks := 0
		for i := range records {
			records[i] = SongRecord{
				Title:       fieldGen.Draw(t, "title"),
				Artist:      fieldGen.Draw(t, "artist"),
				ReleaseDate: fieldGen.Draw(t, "release"),
				Price:       fieldGen.Draw(t, "price"),
			}
			for _, v := range []string{records[i].Title, records[i].Artist, records[i].ReleaseDate, records[i].Price} {
				if strings.TrimSpace(v) == "" {
					blanks++
				}
			}
		}

		result := lib.VerifyAllSongsHaveRequiredFields(records)
		if blanks == 0 {
			if !result.Valid || len(result.Issues) != 0 {
				t.Fatalf("expected valid result, got %+v", result)
			}
		} else {
			if result.Valid || len(result.Issues) != blanks {
				t.Fatalf("expected %d issues, got %+v", blanks, result)
			}
		}
	})
}

func TestAreInitialSongsLoaded(t *testing.T) {
	for _, tc := range []struct {
		rows int
		want bool
	}{
		{4, false},
		{5, true},
		{6, false},
		{0, false},
	} {
		f := newFakePage()
		f.counts[songRowLoc] = tc.rows
		lib := newLibraryForTest(f)
		assert.Equalf(t, tc.want, lib.AreInitialSongsLoaded(), "row count %d", tc.rows)
	}
}

func TestAddSong(t *testing.T) {
	f := newFakePage()
	f.addInput(newSongTitleLoc, "")
	f.addInput(newSongArtistLoc, "")
	f.addInput(newSongReleaseLoc, "")
	f.addInput(newSongPriceLoc, "")
	f.addVisible(addSongButtonLoc)
	lib := newLibraryForTest(f)

	err := lib.AddSong(SongRecord{
		Title: "Take Five", Artist: "Dave Brubeck", ReleaseDate: "1959-09-29", Price: "1.29",
	})
	require.NoError(t, err)

	assert.Equal(t, "Take Five", f.fills[newSongTitleLoc])
	assert.Equal(t, "Dave Brubeck", f.fills[newSongArtistLoc])
	assert.Equal(t, "1959-09-29", f.fills[newSongReleaseLoc])
	assert.Equal(t, "1.29", f.fills[newSongPriceLoc])
	assert.Equal(t, []string{addSongButtonLoc}, f.clicks)
}

func TestAddSongPropagatesMissingForm(t *testing.T) {
	f := newFakePage() // no form elements at all
	lib := newLibraryForTest(f)

	err := lib.AddSong(SongRecord{Title: "X", Artist: "Y", ReleaseDate: "Z", Price: "1"})
	require.Error(t, err)
	assert.Equal(t, errs.Action, errs.CodeOf(err))
}

func TestFilterSongs(t *testing.T) {
	f := newFakePage()
	f.addInput(songFilterLoc, "")
	f.addVisible(songFilterClearLoc)
	lib := newLibraryForTest(f)

	require.NoError(t, lib.FilterSongs("jude"))
	assert.Equal(t, "jude", f.fills[songFilterLoc])

	require.NoError(t, lib.ClearFilter())
	assert.Contains(t, f.clicks, songFilterClearLoc)
}

func TestRowActionButtons(t *testing.T) {
	f := newFakePage()
	f.seedSongTable(seededSongs())
	lib := newLibraryForTest(f)

	require.NoError(t, lib.ClickUpdateForRow(0))
	require.NoError(t, lib.ClickDeleteForRow(4))
	assert.Equal(t, []string{
		"#song-table tbody tr:nth-child(1) button.song-update",
		"#song-table tbody tr:nth-child(5) button.song-delete",
	}, f.clicks)
}

func TestCheckAllElementsVisibilityForLibrary(t *testing.T) {
	f := newFakePage()
	f.addVisible(
		songHeadingLoc, songFilterLoc, songFilterClearLoc, songTableLoc,
		songTableHeadLoc, songHeaderTitleLoc, songHeaderArtistLoc,
		songHeaderReleaseLoc, songHeaderPriceLoc, songHeaderActionsLoc,
		newSongTitleLoc, newSongArtistLoc, newSongReleaseLoc,
		newSongPriceLoc, addSongButtonLoc,
	)
	lib := newLibraryForTest(f)

	report := lib.CheckAllElementsVisibility()
	assert.True(t, report.AllVisible)
	assert.Equal(t, 15, report.Total)

	delete(f.elements, songHeaderPriceLoc)
	report = lib.CheckAllElementsVisibility()
	assert.False(t, report.AllVisible)
	assert.Equal(t, []string{"price header"}, report.Missing)
}
