package validator

import (
	"errors"
	"time"
)

// fakePage implements Page over in-memory locator lists keyed by selector
type fakePage struct {
	locators     map[string]*fakeList
	loadStateErr error
	waits        []time.Duration
}

func newFakePage() *fakePage {
	return &fakePage{locators: map[string]*fakeList{}}
}

func (p *fakePage) addList(selector string, cards ...*fakeCard) *fakeList {
	list := &fakeList{cards: cards}
	p.locators[selector] = list
	return list
}

func (p *fakePage) Locator(selector string) Locator {
	if list, ok := p.locators[selector]; ok {
		return list
	}
	return &fakeList{}
}

func (p *fakePage) WaitForLoadState(state string) error {
	return p.loadStateErr
}

func (p *fakePage) WaitForTimeout(d time.Duration) {
	p.waits = append(p.waits, d)
}

// fakeList implements Locator over a slice of cards
type fakeList struct {
	cards    []*fakeCard
	countErr error
}

func (l *fakeList) Count() (int, error) {
	if l.countErr != nil {
		return 0, l.countErr
	}
	return len(l.cards), nil
}

func (l *fakeList) Nth(index int) Locator {
	return l.cards[index]
}

func (l *fakeList) TextContent() (string, error) {
	return "", errors.New("locator resolves to a list, not an element")
}

func (l *fakeList) GetByText(text string, exact bool) Locator {
	return l
}

func (l *fakeList) Click(timeout time.Duration) error {
	return errors.New("locator resolves to a list, not an element")
}

func (l *fakeList) WaitForVisible(timeout time.Duration) error {
	return errors.New("locator resolves to a list, not an element")
}

// fakeCard implements Locator for one rendered plan card. Its text is the
// full card content; visible lists the substrings a GetByText query will
// find visible within it.
type fakeCard struct {
	text     string
	visible  []string
	textErr  error
	clickErr error
	clicks   int
}

func (c *fakeCard) Count() (int, error) {
	return 1, nil
}

func (c *fakeCard) Nth(index int) Locator {
	return c
}

func (c *fakeCard) TextContent() (string, error) {
	if c.textErr != nil {
		return "", c.textErr
	}
	return c.text, nil
}

func (c *fakeCard) GetByText(text string, exact bool) Locator {
	return &fakeText{card: c, text: text}
}

func (c *fakeCard) Click(timeout time.Duration) error {
	c.clicks++
	return c.clickErr
}

func (c *fakeCard) WaitForVisible(timeout time.Duration) error {
	return nil
}

// fakeText is the result of a GetByText query against a card
type fakeText struct {
	card *fakeCard
	text string
}

func (t *fakeText) Count() (int, error) {
	return 1, nil
}

func (t *fakeText) Nth(index int) Locator {
	return t
}

func (t *fakeText) TextContent() (string, error) {
	return t.text, nil
}

func (t *fakeText) GetByText(text string, exact bool) Locator {
	return &fakeText{card: t.card, text: text}
}

func (t *fakeText) Click(timeout time.Duration) error {
	return nil
}

func (t *fakeText) WaitForVisible(timeout time.Duration) error {
	for _, v := range t.card.visible {
		if v == t.text {
			return nil
		}
	}
	return errors.New("element not visible within timeout")
}
