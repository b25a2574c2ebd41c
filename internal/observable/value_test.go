package observable

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSubscribe_ReplaysCurrentValue(t *testing.T) {
	v := New(42)

	var got []int
	cancel := v.Subscribe(func(n int) { got = append(got, n) })
	defer cancel()

	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("expected immediate replay of 42, got %v", got)
	}

	v.Set(43)
	if len(got) != 2 || got[1] != 43 {
		t.Errorf("expected 43 after Set, got %v", got)
	}
}

func TestUpdate_NoChangeDoesNotNotify(t *testing.T) {
	v := New("a")

	calls := 0
	v.Subscribe(func(string) { calls++ })

	err := v.Update(func(cur string) (string, bool, error) {
		return cur, false, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected only the replay call, got %d calls", calls)
	}
}

func TestUpdate_ErrorKeepsValue(t *testing.T) {
	v := New(1)
	boom := errors.New("boom")

	calls := 0
	v.Subscribe(func(int) { calls++ })

	err := v.Update(func(cur int) (int, bool, error) {
		return cur + 1, true, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if v.Get() != 1 {
		t.Errorf("value should be unchanged, got %d", v.Get())
	}
	if calls != 1 {
		t.Errorf("observers should not be notified on error, got %d calls", calls)
	}
}

func TestUpdate_PanicReleasesLock(t *testing.T) {
	v := New(1)

	func() {
		defer func() { _ = recover() }()
		_ = v.Update(func(int) (int, bool, error) { panic("boom") })
	}()

	v.Set(2)
	if v.Get() != 2 {
		t.Errorf("value should still be usable after a panicking update")
	}
}

func TestCancel_StopsDelivery(t *testing.T) {
	v := New(0)

	calls := 0
	cancel := v.Subscribe(func(int) { calls++ })
	cancel()
	cancel()

	v.Set(1)
	if calls != 1 {
		t.Errorf("expected no delivery after cancel, got %d calls", calls)
	}
	if v.Observers() != 0 {
		t.Errorf("expected 0 observers, got %d", v.Observers())
	}
}

func TestObserverMayReadValue(t *testing.T) {
	v := New(0)

	var seen []int
	v.Subscribe(func(n int) {
		if v.Get() != n {
			t.Errorf("Get() inside observer = %d, delivered %d", v.Get(), n)
		}
		seen = append(seen, n)
	})

	v.Set(5)
	if len(seen) != 2 {
		t.Errorf("expected 2 deliveries, got %v", seen)
	}
}

func TestObserverMayReadDuringConcurrentUpdate(t *testing.T) {
	v := New(0)

	entered := make(chan struct{})
	release := make(chan struct{})
	read := make(chan int, 1)
	v.Subscribe(func(n int) {
		if n != 1 {
			return
		}
		close(entered)
		<-release
		read <- v.Get()
	})

	go v.Set(1)
	<-entered

	secondDone := make(chan struct{})
	go func() {
		v.Set(2)
		close(secondDone)
	}()
	// let the second Set commit and queue behind the running delivery
	time.Sleep(50 * time.Millisecond)
	close(release)

	select {
	case n := <-read:
		if n != 1 && n != 2 {
			t.Errorf("Get() inside observer = %d, expected 1 or 2", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Get() inside observer blocked by a concurrent Set")
	}

	select {
	case <-secondDone:
	case <-time.After(2 * time.Second):
		t.Fatal("concurrent Set never completed")
	}
	if v.Get() != 2 {
		t.Errorf("expected 2, got %d", v.Get())
	}
}

func TestConcurrentUpdates_DeliveredInCommitOrder(t *testing.T) {
	v := New(0)

	var mu sync.Mutex
	var seen []int
	v.Subscribe(func(n int) {
		mu.Lock()
		seen = append(seen, n)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = v.Update(func(cur int) (int, bool, error) { return cur + 1, true, nil })
		}()
	}
	wg.Wait()

	if v.Get() != 50 {
		t.Fatalf("expected 50, got %d", v.Get())
	}
	mu.Lock()
	defer mu.Unlock()
	for i, n := range seen {
		if n != i {
			t.Fatalf("delivery out of order at %d: %v", i, seen)
		}
	}
}
