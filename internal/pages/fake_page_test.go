package pages

import (
	"fmt"
	"os"
	"time"
)

// fakeElement is one entry in the fake DOM.
type fakeElement struct {
	visible bool
	text    string
	value   string
}

// fakePage is an in-memory driver implementing browser.Page. Probes against
// it return immediately instead of burning real wait budgets.
type fakePage struct {
	elements map[string]*fakeElement
	counts   map[string]int
	clicks   []string
	fills    map[string]string
	title    string
	url      string
	gotoErr  error
	clickErr error
	fillErr  error
}

func newFakePage() *fakePage {
	return &fakePage{
		elements: make(map[string]*fakeElement),
		counts:   make(map[string]int),
		fills:    make(map[string]string),
		title:    "Benefits Portal",
		url:      "http://fixture.internal/",
	}
}

func (f *fakePage) addVisible(selectors ...string) {
	for _, sel := range selectors {
		f.elements[sel] = &fakeElement{visible: true}
	}
}

func (f *fakePage) addHidden(selector string) {
	f.elements[selector] = &fakeElement{visible: false}
}

func (f *fakePage) addInput(selector, value string) {
	f.elements[selector] = &fakeElement{visible: true, value: value}
}

func (f *fakePage) addText(selector, text string) {
	f.elements[selector] = &fakeElement{visible: true, text: text}
}

func (f *fakePage) Goto(url string, _ time.Duration) error {
	if f.gotoErr != nil {
		return f.gotoErr
	}
	f.url = url
	return nil
}

func (f *fakePage) Title() (string, error) { return f.title, nil }

func (f *fakePage) URL() string { return f.url }

func (f *fakePage) WaitVisible(selector string, _ time.Duration) error {
	el, ok := f.elements[selector]
	if !ok || !el.visible {
		return fmt.Errorf("fake: selector %q not visible within budget", selector)
	}
	return nil
}

func (f *fakePage) Click(selector string, _ time.Duration) error {
	if f.clickErr != nil {
		return f.clickErr
	}
	if err := f.WaitVisible(selector, 0); err != nil {
		return err
	}
	f.clicks = append(f.clicks, selector)
	return nil
}

func (f *fakePage) Fill(selector, value string, _ time.Duration) error {
	if f.fillErr != nil {
		return f.fillErr
	}
	el, ok := f.elements[selector]
	if !ok || !el.visible {
		return fmt.Errorf("fake: selector %q not fillable", selector)
	}
	el.value = value
	f.fills[selector] = value
	return nil
}

func (f *fakePage) Text(selector string, _ time.Duration) (string, error) {
	el, ok := f.elements[selector]
	if !ok {
		return "", fmt.Errorf("fake: selector %q not found", selector)
	}
	return el.text, nil
}

func (f *fakePage) InputValue(selector string, _ time.Duration) (string, error) {
	el, ok := f.elements[selector]
	if !ok || !el.visible {
		return "", fmt.Errorf("fake: selector %q has no input", selector)
	}
	return el.value, nil
}

func (f *fakePage) Count(selector string) (int, error) {
	if n, ok := f.counts[selector]; ok {
		return n, nil
	}
	if _, ok := f.elements[selector]; ok {
		return 1, nil
	}
	return 0, nil
}

func (f *fakePage) Screenshot(path string) error {
	return os.WriteFile(path, []byte("fake-png"), 0o644)
}

func (f *fakePage) Close() error { return nil }

// seedSongTable populates the fake DOM with a song table of the given rows.
func (f *fakePage) seedSongTable(rows []SongRecord) {
	f.counts[songRowLoc] = len(rows)
	for i, row := range rows {
		pos := i + 1
		f.addInput(fmt.Sprintf(rowTitleFmt, pos), row.Title)
		f.addInput(fmt.Sprintf(rowArtistFmt, pos), row.Artist)
		f.addInput(fmt.Sprintf(rowReleaseFmt, pos), row.ReleaseDate)
		f.addInput(fmt.Sprintf(rowPriceFmt, pos), row.Price)
		f.addVisible(fmt.Sprintf(rowUpdateFmt, pos), fmt.Sprintf(rowDeleteFmt, pos))
	}
}

// seedFullHeader makes every header locator visible.
func seedFullHeader(f *fakePage) {
	f.addVisible(
		headerContainerLoc, topBarLoc, logoLoc, siteTitleLoc, skipLinkLoc,
		loginLinkLoc, profileMenuLoc, helpLinkLoc, notificationsLoc,
		mainMenuLoc, menuHomeLoc, menuBenefitsLoc, menuDependentsLoc,
		menuClaimsLoc, menuDocumentsLoc, menuSupportLoc,
		benefitsSubmenuLoc, benefitsMedicalLoc, benefitsDentalLoc,
		benefitsVisionLoc, benefitsLifeLoc,
		claimsSubmenuLoc, claimsSubmitLoc, claimsStatusLoc, claimsHistoryLoc,
		supportSubmenuLoc, supportFAQLoc, supportContactLoc, supportGlossaryLoc,
		searchToggleLoc, searchInputLoc, searchSubmitLoc, searchCloseLoc,
		translateToggleLoc, translateENLoc, translateESLoc, translateFRLoc,
	)
}

// fastTimeouts keeps unit tests snappy; the fake never actually waits.
func fastTimeouts() Timeouts {
	return Timeouts{Probe: 10 * time.Millisecond, Action: 10 * time.Millisecond, Nav: 10 * time.Millisecond}
}
