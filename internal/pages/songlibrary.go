package pages

import (
	"fmt"
	"strings"

	"github.com/kuitang/benefits-e2e/internal/artifacts"
	"github.com/kuitang/benefits-e2e/internal/browser"
	"github.com/kuitang/benefits-e2e/internal/errs"
)

// Selectors for the song-library demo page. Rows are addressed positionally;
// the row index is the only correlation key, so callers must not assume row
// identity survives a DOM reflow.
const (
	songHeadingLoc     = "#song-library-heading"
	songFilterLoc      = "#song-filter"
	songFilterClearLoc = "#song-filter-clear"
	songTableLoc       = "#song-table"
	songTableHeadLoc   = "#song-table thead"
	songRowLoc         = "#song-table tbody tr"

	songHeaderTitleLoc   = "#song-header-title"
	songHeaderArtistLoc  = "#song-header-artist"
	songHeaderReleaseLoc = "#song-header-release-date"
	songHeaderPriceLoc   = "#song-header-price"
	songHeaderActionsLoc = "#song-header-actions"

	newSongTitleLoc   = "#new-song-title"
	newSongArtistLoc  = "#new-song-artist"
	newSongReleaseLoc = "#new-song-release-date"
	newSongPriceLoc   = "#new-song-price"
	addSongButtonLoc  = "#add-song"
)

// Per-row selectors, parameterized by 1-based CSS position.
const (
	rowTitleFmt   = "#song-table tbody tr:nth-child(%d) input.song-title"
	rowArtistFmt  = "#song-table tbody tr:nth-child(%d) input.song-artist"
	rowReleaseFmt = "#song-table tbody tr:nth-child(%d) input.song-release-date"
	rowPriceFmt   = "#song-table tbody tr:nth-child(%d) input.song-price"
	rowUpdateFmt  = "#song-table tbody tr:nth-child(%d) button.song-update"
	rowDeleteFmt  = "#song-table tbody tr:nth-child(%d) button.song-delete"
)

// initialSeedCount is how many songs the portal seeds the demo table with.
const initialSeedCount = 5

// SongRecord is a transient snapshot of one table row's input values.
// It is re-read on every call and never cached.
type SongRecord struct {
	Title       string
	Artist      string
	ReleaseDate string
	Price       string
}

// ValidationResult reports the outcome of a required-fields pass.
type ValidationResult struct {
	Valid  bool
	Issues []string
}

// SongLibraryPage maps the song-library CRUD table.
type SongLibraryPage struct {
	BasePage
}

// NewSongLibraryPage binds the song library page object to a live page.
func NewSongLibraryPage(page browser.Page, store *artifacts.Store, timeouts Timeouts) *SongLibraryPage {
	return &SongLibraryPage{BasePage: NewBasePage(page, store, timeouts)}
}

// Visibility probes.

func (s *SongLibraryPage) CheckHeadingVisible() bool     { return s.IsElementVisible(songHeadingLoc) }
func (s *SongLibraryPage) CheckFilterInputVisible() bool { return s.IsElementVisible(songFilterLoc) }
func (s *SongLibraryPage) CheckFilterClearVisible() bool { return s.IsElementVisible(songFilterClearLoc) }
func (s *SongLibraryPage) CheckTableVisible() bool       { return s.IsElementVisible(songTableLoc) }
func (s *SongLibraryPage) CheckTableHeadVisible() bool   { return s.IsElementVisible(songTableHeadLoc) }
func (s *SongLibraryPage) CheckAddButtonVisible() bool   { return s.IsElementVisible(addSongButtonLoc) }

func (s *SongLibraryPage) CheckTitleHeaderVisible() bool   { return s.IsElementVisible(songHeaderTitleLoc) }
func (s *SongLibraryPage) CheckArtistHeaderVisible() bool  { return s.IsElementVisible(songHeaderArtistLoc) }
func (s *SongLibraryPage) CheckReleaseHeaderVisible() bool { return s.IsElementVisible(songHeaderReleaseLoc) }
func (s *SongLibraryPage) CheckPriceHeaderVisible() bool   { return s.IsElementVisible(songHeaderPriceLoc) }
func (s *SongLibraryPage) CheckActionsHeaderVisible() bool { return s.IsElementVisible(songHeaderActionsLoc) }

func (s *SongLibraryPage) CheckNewSongFormVisible() bool {
	return s.probeAll(s.newSongFormLocators()).AllVisible
}

func (s *SongLibraryPage) newSongFormLocators() []namedLocator {
	return []namedLocator{
		{"new song title", newSongTitleLoc},
		{"new song artist", newSongArtistLoc},
		{"new song release date", newSongReleaseLoc},
		{"new song price", newSongPriceLoc},
		{"add song button", addSongButtonLoc},
	}
}

func (s *SongLibraryPage) allLocators() []namedLocator {
	locators := []namedLocator{
		{"heading", songHeadingLoc},
		{"filter input", songFilterLoc},
		{"filter clear", songFilterClearLoc},
		{"table", songTableLoc},
		{"table head", songTableHeadLoc},
		{"title header", songHeaderTitleLoc},
		{"artist header", songHeaderArtistLoc},
		{"release date header", songHeaderReleaseLoc},
		{"price header", songHeaderPriceLoc},
		{"actions header", songHeaderActionsLoc},
	}
	return append(locators, s.newSongFormLocators()...)
}

// CheckAllElementsVisibility probes the full song-library locator table.
func (s *SongLibraryPage) CheckAllElementsVisibility() VisibilityReport {
	return s.probeAll(s.allLocators())
}

// GetSongRowCount returns the number of table rows at call time.
func (s *SongLibraryPage) GetSongRowCount() (int, error) {
	count, err := s.page.Count(songRowLoc)
	if err != nil {
		return 0, errs.Wrap(errs.Action, "count song rows", err)
	}
	return count, nil
}

// GetSongDataFromRow reads the input values of the row at the given 0-based
// index. Field reads that fail within budget surface as empty strings; only
// an out-of-range index is an error.
func (s *SongLibraryPage) GetSongDataFromRow(index int) (SongRecord, error) {
	count, err := s.GetSongRowCount()
	if err != nil {
		return SongRecord{}, err
	}
	if index < 0 || index >= count {
		return SongRecord{}, errs.New(errs.NotFound,
			fmt.Sprintf("song row %d out of range, table has %d rows", index, count))
	}

	pos := index + 1 // CSS :nth-child is 1-based
	return SongRecord{
		Title:       s.inputValueOrEmpty(fmt.Sprintf(rowTitleFmt, pos)),
		Artist:      s.inputValueOrEmpty(fmt.Sprintf(rowArtistFmt, pos)),
		ReleaseDate: s.inputValueOrEmpty(fmt.Sprintf(rowReleaseFmt, pos)),
		Price:       s.inputValueOrEmpty(fmt.Sprintf(rowPriceFmt, pos)),
	}, nil
}

func (s *SongLibraryPage) inputValueOrEmpty(selector string) string {
	value, err := s.page.InputValue(selector, s.timeouts.Probe)
	if err != nil {
		s.log.Debug("input read negative", "selector", selector)
		return ""
	}
	return value
}

// GetAllSongData reads every row. The returned slice length equals the row
// count at call time.
func (s *SongLibraryPage) GetAllSongData() ([]SongRecord, error) {
	count, err := s.GetSongRowCount()
	if err != nil {
		return nil, err
	}
	records := make([]SongRecord, 0, count)
	for i := 0; i < count; i++ {
		record, err := s.GetSongDataFromRow(i)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// VerifyAllSongsHaveRequiredFields is a pure validation pass over already
// fetched records: a row is invalid iff any of its four fields is empty or
// whitespace-only. No DOM access happens here.
func (s *SongLibraryPage) VerifyAllSongsHaveRequiredFields(records []SongRecord) ValidationResult {
	result := ValidationResult{Valid: true}
	for i, record := range records {
		for _, field := range []struct {
			label string
			value string
		}{
			{"title", record.Title},
			{"artist", record.Artist},
			{"release date", record.ReleaseDate},
			{"price", record.Price},
		} {
			if strings.TrimSpace(field.value) == "" {
				result.Valid = false
				result.Issues = append(result.Issues, fmt.Sprintf("Row %d: Missing %s", i, field.label))
			}
		}
	}
	return result
}

// AreInitialSongsLoaded reports whether the table holds exactly the seeded
// row count. Any other count, or a failed read, is false.
func (s *SongLibraryPage) AreInitialSongsLoaded() bool {
	count, err := s.GetSongRowCount()
	if err != nil {
		return false
	}
	return count == initialSeedCount
}

// FilterSongs types into the filter input.
func (s *SongLibraryPage) FilterSongs(text string) error {
	return s.FillInput(songFilterLoc, text)
}

// ClearFilter clicks the filter clear button.
func (s *SongLibraryPage) ClearFilter() error {
	return s.ClickElement(songFilterClearLoc)
}

// AddSong fills the new-song form and submits it.
func (s *SongLibraryPage) AddSong(record SongRecord) error {
	if err := s.FillInput(newSongTitleLoc, record.Title); err != nil {
		return err
	}
	if err := s.FillInput(newSongArtistLoc, record.Artist); err != nil {
		return err
	}
	if err := s.FillInput(newSongReleaseLoc, record.ReleaseDate); err != nil {
		return err
	}
	if err := s.FillInput(newSongPriceLoc, record.Price); err != nil {
		return err
	}
	return s.ClickElement(addSongButtonLoc)
}

// ClickUpdateForRow clicks the update button of the row at the 0-based index.
func (s *SongLibraryPage) ClickUpdateForRow(index int) error {
	return s.ClickElement(fmt.Sprintf(rowUpdateFmt, index+1))
}

// ClickDeleteForRow clicks the delete button of the row at the 0-based index.
func (s *SongLibraryPage) ClickDeleteForRow(index int) error {
	return s.ClickElement(fmt.Sprintf(rowDeleteFmt, index+1))
}
