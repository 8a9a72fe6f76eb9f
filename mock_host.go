package autosize

import "sync"

// MockHost is a Host for testing. The parent box is set directly and
// notifications are delivered synchronously by Trigger and Resize.
type MockHost struct {
	mu         sync.Mutex
	parent     Box
	measureErr error
	observeErr error
	subs       []*mockSubscription

	measureCount    int
	observeCount    int
	disconnectCount int
}

type mockSubscription struct {
	target    *Element
	onEntries func([]ResizeEntry)
	connected bool
}

// Ensure MockHost implements Host.
var _ Host = (*MockHost)(nil)

// NewMockHost creates a mock host whose parent box is width x height at the
// origin.
func NewMockHost(width, height float64) *MockHost {
	return &MockHost{parent: NewBox(0, 0, width, height)}
}

// SetParent changes the parent box used by Measure and Resize.
func (m *MockHost) SetParent(b Box) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parent = b
}

// SetMeasureError makes subsequent Measure calls fail with err.
func (m *MockHost) SetMeasureError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.measureErr = err
}

// SetObserveError makes subsequent Observe calls fail with err.
func (m *MockHost) SetObserveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observeErr = err
}

// Measure lays target out in the parent box and returns its content box.
func (m *MockHost) Measure(target *Element) (Box, error) {
	m.mu.Lock()
	m.measureCount++
	parent, err := m.parent, m.measureErr
	m.mu.Unlock()
	if err != nil {
		return Box{}, err
	}
	target.Layout(parent)
	return target.ContentBox(), nil
}

// Observe records a subscription. The returned Disconnect counts every call.
func (m *MockHost) Observe(target *Element, onEntries func([]ResizeEntry)) (Disconnect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.observeErr != nil {
		return nil, m.observeErr
	}
	m.observeCount++
	sub := &mockSubscription{target: target, onEntries: onEntries, connected: true}
	m.subs = append(m.subs, sub)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.disconnectCount++
		sub.connected = false
	}, nil
}

// Trigger delivers entries to every connected subscription.
func (m *MockHost) Trigger(entries ...ResizeEntry) {
	for _, sub := range m.snapshot(false) {
		sub.onEntries(entries)
	}
}

// TriggerStale delivers entries to every subscription ever made, including
// disconnected ones.
func (m *MockHost) TriggerStale(entries ...ResizeEntry) {
	for _, sub := range m.snapshot(true) {
		sub.onEntries(entries)
	}
}

// Resize sets the parent box, lays out every connected target and notifies
// each subscription with its target's new content box.
func (m *MockHost) Resize(parent Box) {
	m.SetParent(parent)
	for _, sub := range m.snapshot(false) {
		sub.target.Layout(parent)
		sub.onEntries([]ResizeEntry{{Target: sub.target, ContentRect: sub.target.ContentBox()}})
	}
}

func (m *MockHost) snapshot(includeStale bool) []*mockSubscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*mockSubscription, 0, len(m.subs))
	for _, sub := range m.subs {
		if includeStale || sub.connected {
			out = append(out, sub)
		}
	}
	return out
}

// MeasureCount returns the number of Measure calls.
func (m *MockHost) MeasureCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.measureCount
}

// ObserveCount returns the number of successful Observe calls.
func (m *MockHost) ObserveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.observeCount
}

// DisconnectCount returns the number of Disconnect calls.
func (m *MockHost) DisconnectCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disconnectCount
}

// ActiveSubscriptions returns the number of connected subscriptions.
func (m *MockHost) ActiveSubscriptions() int {
	return len(m.snapshot(false))
}
