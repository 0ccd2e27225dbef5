package room

import (
	"testing"
	"time"
)

func countActiveTurrets(reg *EntityRegistry, ownerID uint32) int {
	n := 0
	for _, t := range reg.Turrets {
		if t.OwnerID == ownerID && t.Active {
			n++
		}
	}
	return n
}

func TestAddTurretEvictsOldestWhenOverCap(t *testing.T) {
	t.Parallel()

	reg := NewEntityRegistry()
	const owner = uint32(7)
	const maxPerOwner = 2

	for i := 0; i < maxPerOwner; i++ {
		reg.AddTurret(NewTurret(owner, 1, 0, 0, DefaultUtilityConfig(), time.Time{}), maxPerOwner)
	}
	if got := countActiveTurrets(reg, owner); got != maxPerOwner {
		t.Fatalf("expected %d active turrets at the maxPerOwner, got %d", maxPerOwner, got)
	}

	reg.AddTurret(NewTurret(owner, 1, 0, 0, DefaultUtilityConfig(), time.Time{}), maxPerOwner)

	if got := countActiveTurrets(reg, owner); got != maxPerOwner {
		t.Fatalf("expected adding past the maxPerOwner to evict one, keeping count at %d, got %d", maxPerOwner, got)
	}
}

func TestAddTurretCapIsPerOwner(t *testing.T) {
	t.Parallel()

	reg := NewEntityRegistry()
	const maxPerOwner = 1

	reg.AddTurret(NewTurret(1, 1, 0, 0, DefaultUtilityConfig(), time.Time{}), maxPerOwner)
	reg.AddTurret(NewTurret(2, 2, 0, 0, DefaultUtilityConfig(), time.Time{}), maxPerOwner)

	if got := countActiveTurrets(reg, 1); got != 1 {
		t.Fatalf("expected owner 1's turret to be unaffected by owner 2 deploying, got %d", got)
	}
	if got := countActiveTurrets(reg, 2); got != 1 {
		t.Fatalf("expected owner 2 to have exactly one turret, got %d", got)
	}
}

func TestAddTeleportPadEvictionUnlinksPartner(t *testing.T) {
	t.Parallel()

	reg := NewEntityRegistry()
	const owner = uint32(3)
	const maxPerOwner = 1

	first := NewTeleportPad(owner, 0, 0, DefaultUtilityConfig())
	reg.AddTeleportPad(first, maxPerOwner)

	partner := NewTeleportPad(99, 10, 10, DefaultUtilityConfig())
	reg.TeleportPads[partner.ID] = partner
	Link(first, partner)

	second := NewTeleportPad(owner, 5, 5, DefaultUtilityConfig())
	reg.AddTeleportPad(second, maxPerOwner)

	if first.Active {
		t.Fatalf("expected the first pad to be evicted once the owner exceeds the maxPerOwner")
	}
	if partner.PartnerID != 0 {
		t.Fatalf("expected the surviving partner to be unlinked after its pad is evicted, got partner=%d", partner.PartnerID)
	}
}

func TestKindOfReportsRegisteredKind(t *testing.T) {
	t.Parallel()

	reg := NewEntityRegistry()
	p := newTestPlayer(1, 0)
	reg.AddPlayer(p)

	kind, ok := reg.KindOf(p.ID)
	if !ok || kind != KindPlayer {
		t.Fatalf("expected KindOf to report %q for a registered player, got %q ok=%v", KindPlayer, kind, ok)
	}

	if _, ok := reg.KindOf(99999); ok {
		t.Fatalf("expected KindOf to report false for an unregistered id")
	}
}
