package room

// Command type tags recognized by Room.Apply. Payloads are concrete structs below, carried through
// sim.Command.Payload.
const (
	CmdMove           = "move"
	CmdAim            = "aim"
	CmdFire           = "fire"
	CmdReload         = "reload"
	CmdDeployUtility  = "deploy_utility"
	CmdSelectUtility  = "select_utility"
	CmdConfigChange   = "config_change"
)

// MovePayload is a normalized movement intent; X/Y are clamped to [-1,1]
// before being applied.
type MovePayload struct {
	X, Y float64
}

// AimPayload sets the player's aim point in world space.
type AimPayload struct {
	X, Y float64
}

// FirePayload requests a shot; Alt selects the utility/secondary fire mode.
type FirePayload struct {
	Alt bool
}

// SelectUtilityPayload swaps the player's utility slot.
type SelectUtilityPayload struct {
	Slot UtilityWeaponName
}

// ConfigChangePayload carries a player's weapon/utility loadout change.
// Applying the same payload twice yields the same weapon state: a fresh
// WeaponInstance is derived from Weapon each time, always starting at a
// full magazine.
type ConfigChangePayload struct {
	Weapon  WeaponConfig
	Utility UtilityWeaponName
}
