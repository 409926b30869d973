package scraper

// In-memory browser engine for tests, so the extraction pipeline can run
// without a Chromium process.

type mockElement struct {
	text string
	err  error
}

func (m mockElement) Text() (string, error) {
	return m.text, m.err
}

type mockSession struct {
	// elements maps a selector to the elements it yields; selectors not in
	// the map yield no elements.
	elements map[string][]Element
	// queryErrs makes individual selector queries fail.
	queryErrs map[string]error

	navErr  error
	stopErr error

	queried   []string
	stopCount int
}

func (m *mockSession) Navigate(url string) error {
	return m.navErr
}

func (m *mockSession) Elements(selector string) ([]Element, error) {
	m.queried = append(m.queried, selector)
	if err, ok := m.queryErrs[selector]; ok {
		return nil, err
	}
	return m.elements[selector], nil
}

func (m *mockSession) Stop() error {
	m.stopCount++
	return m.stopErr
}

type mockEngine struct {
	session   *mockSession
	launchErr error
}

func (m *mockEngine) Launch() (Session, error) {
	if m.launchErr != nil {
		return nil, m.launchErr
	}
	return m.session, nil
}

func texts(values ...string) []Element {
	els := make([]Element, len(values))
	for i, v := range values {
		els[i] = mockElement{text: v}
	}
	return els
}
