package flag

// Effect is the gameplay effect a flag grants (or inflicts on) its carrier.
// The numeric values travel on the wire inside custom flag descriptors and
// must stay stable.
type Effect uint8

const (
	EffectNormal Effect = iota
	EffectVelocity
	EffectQuickTurn
	EffectOscillationOverthruster
	EffectRapidFire
	EffectMachineGun
	EffectGuidedMissile
	EffectLaser
	EffectRicochet
	EffectSuperBullet
	EffectInvisibleBullet
	EffectStealth
	EffectTiny
	EffectNarrow
	EffectShield
	EffectSteamroller
	EffectShockWave
	EffectPhantomZone
	EffectJumping
	EffectIdentify
	EffectCloaking
	EffectUseless
	EffectMasquerade
	EffectSeer
	EffectThief
	EffectBurrow
	EffectWings
	EffectAgility
	EffectColorblindness
	EffectObesity
	EffectLeftTurnOnly
	EffectRightTurnOnly
	EffectForwardOnly
	EffectReverseOnly
	EffectMomentum
	EffectBlindness
	EffectJamming
	EffectWideAngle
	EffectNoJumping
	EffectTriggerHappy
	EffectReverseControls
	EffectBouncy
	EffectNoShot

	effectCount
)

var effectNames = [...]string{
	EffectNormal:                  "Normal",
	EffectVelocity:                "Velocity",
	EffectQuickTurn:               "QuickTurn",
	EffectOscillationOverthruster: "OscillationOverthruster",
	EffectRapidFire:               "RapidFire",
	EffectMachineGun:              "MachineGun",
	EffectGuidedMissile:           "GuidedMissile",
	EffectLaser:                   "Laser",
	EffectRicochet:                "Ricochet",
	EffectSuperBullet:             "SuperBullet",
	EffectInvisibleBullet:         "InvisibleBullet",
	EffectStealth:                 "Stealth",
	EffectTiny:                    "Tiny",
	EffectNarrow:                  "Narrow",
	EffectShield:                  "Shield",
	EffectSteamroller:             "Steamroller",
	EffectShockWave:               "ShockWave",
	EffectPhantomZone:             "PhantomZone",
	EffectJumping:                 "Jumping",
	EffectIdentify:                "Identify",
	EffectCloaking:                "Cloaking",
	EffectUseless:                 "Useless",
	EffectMasquerade:              "Masquerade",
	EffectSeer:                    "Seer",
	EffectThief:                   "Thief",
	EffectBurrow:                  "Burrow",
	EffectWings:                   "Wings",
	EffectAgility:                 "Agility",
	EffectColorblindness:          "Colorblindness",
	EffectObesity:                 "Obesity",
	EffectLeftTurnOnly:            "LeftTurnOnly",
	EffectRightTurnOnly:           "RightTurnOnly",
	EffectForwardOnly:             "ForwardOnly",
	EffectReverseOnly:             "ReverseOnly",
	EffectMomentum:                "Momentum",
	EffectBlindness:               "Blindness",
	EffectJamming:                 "Jamming",
	EffectWideAngle:               "WideAngle",
	EffectNoJumping:               "NoJumping",
	EffectTriggerHappy:            "TriggerHappy",
	EffectReverseControls:         "ReverseControls",
	EffectBouncy:                  "Bouncy",
	EffectNoShot:                  "NoShot",
}

// Valid reports whether e is a defined effect tag.
func (e Effect) Valid() bool {
	return e < effectCount
}

func (e Effect) String() string {
	if !e.Valid() {
		return "Invalid"
	}
	return effectNames[e]
}

// ParseEffect maps an effect name (as spelled by String) back to its tag.
func ParseEffect(s string) (Effect, bool) {
	for i, name := range effectNames {
		if name == s {
			return Effect(i), true
		}
	}
	return EffectNormal, false
}
