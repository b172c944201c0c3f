package telegram

import (
	"testing"
	"time"
)

func TestRateLimiter_BurstThenBlocked(t *testing.T) {
	rl := NewRateLimiter(60, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow(100) {
			t.Fatalf("Call %d should be within burst", i+1)
		}
	}
	if rl.Allow(100) {
		t.Error("Fourth immediate call should be blocked")
	}
}

func TestRateLimiter_UsersIndependent(t *testing.T) {
	rl := NewRateLimiter(60, 1)

	if !rl.Allow(1) {
		t.Error("First user's first call should pass")
	}
	if rl.Allow(1) {
		t.Error("First user's second call should be blocked")
	}
	if !rl.Allow(2) {
		t.Error("Second user should have their own bucket")
	}
}

func TestRateLimiter_Refills(t *testing.T) {
	// 6000/min = one token every 10ms
	rl := NewRateLimiter(6000, 1)

	if !rl.Allow(7) {
		t.Fatal("First call should pass")
	}
	if rl.Allow(7) {
		t.Fatal("Second immediate call should be blocked")
	}

	time.Sleep(25 * time.Millisecond)
	if !rl.Allow(7) {
		t.Error("Call after refill interval should pass")
	}
	if rl.Allow(7) {
		t.Error("Tokens should cap at burst, not accumulate past it")
	}
}

func TestRateLimiter_CleanupDropsIdleUsers(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	rl.Allow(55)

	rl.mu.Lock()
	rl.users[55].lastTime = time.Now().Add(-20 * time.Minute)
	rl.mu.Unlock()

	rl.cleanup()

	rl.mu.Lock()
	_, exists := rl.users[55]
	rl.mu.Unlock()
	if exists {
		t.Error("Idle user bucket should have been dropped")
	}
}

func TestPrefs_AutoNotifyRoundTrip(t *testing.T) {
	p := NewPrefs()

	if got := p.AutoNotifyUsers(); len(got) != 0 {
		t.Errorf("Fresh store should have no opted-in users, got %v", got)
	}

	p.SetAutoNotify(10, true)
	p.SetAutoNotify(20, true)
	p.SetAutoNotify(20, false)

	got := p.AutoNotifyUsers()
	if len(got) != 1 || got[0] != 10 {
		t.Errorf("Expected only user 10 opted in, got %v", got)
	}
}
