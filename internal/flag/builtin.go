package flag

import "github.com/wahidmounir/bzflag/pkg/game"

// registerBuiltins populates the catalog every build shares. Team flags are
// droppable anywhere (Normal), good super flags vanish after use (Unstable),
// and bad super flags can't be shaken off (Sticky).
func registerBuiltins(r *Registry) {
	r.null = r.register(&Type{
		Name: "Null", Abbrev: "",
		Endurance: EnduranceNormal, Shot: NormalShot, Quality: QualityGood,
		Team: game.NoTeam, Effect: EffectNormal,
	})

	teamHelp := "If it's yours, prevent other teams from taking it. If it's not, take it to your base to capture it!"
	r.register(&Type{Name: "Red Team", Abbrev: "R*", Endurance: EnduranceNormal, Shot: NormalShot,
		Quality: QualityGood, Team: game.RedTeam, Effect: EffectNormal, Help: teamHelp})
	r.register(&Type{Name: "Green Team", Abbrev: "G*", Endurance: EnduranceNormal, Shot: NormalShot,
		Quality: QualityGood, Team: game.GreenTeam, Effect: EffectNormal, Help: teamHelp})
	r.register(&Type{Name: "Blue Team", Abbrev: "B*", Endurance: EnduranceNormal, Shot: NormalShot,
		Quality: QualityGood, Team: game.BlueTeam, Effect: EffectNormal, Help: teamHelp})
	r.register(&Type{Name: "Purple Team", Abbrev: "P*", Endurance: EnduranceNormal, Shot: NormalShot,
		Quality: QualityGood, Team: game.PurpleTeam, Effect: EffectNormal, Help: teamHelp})

	good := func(name, abbrev string, shot ShotType, effect Effect, help string) {
		r.register(&Type{Name: name, Abbrev: abbrev, Endurance: EnduranceUnstable, Shot: shot,
			Quality: QualityGood, Team: game.NoTeam, Effect: effect, Help: help})
	}
	bad := func(name, abbrev string, effect Effect, help string) {
		r.register(&Type{Name: name, Abbrev: abbrev, Endurance: EnduranceSticky, Shot: NormalShot,
			Quality: QualityBad, Team: game.NoTeam, Effect: effect, Help: help})
	}

	good("High Speed", "V", NormalShot, EffectVelocity,
		"Tank moves faster. Outrun bad guys.")
	good("Quick Turn", "QT", NormalShot, EffectQuickTurn,
		"Tank turns faster. Good for dodging.")
	good("Oscillation Overthruster", "OO", NormalShot, EffectOscillationOverthruster,
		"Can drive through buildings. Can't backup or shoot while inside.")
	good("Rapid Fire", "F", SpecialShot, EffectRapidFire,
		"Shoots more often. Shells go faster than normal.")
	good("Machine Gun", "MG", SpecialShot, EffectMachineGun,
		"Very fast reload and very short range.")
	good("Guided Missile", "GM", SpecialShot, EffectGuidedMissile,
		"Shots track a target. Lock on with right button. Can lock on or retarget after firing.")
	good("Laser", "L", SpecialShot, EffectLaser,
		"Shoots a laser. Infinite speed and range but long reload time.")
	good("Ricochet", "R", SpecialShot, EffectRicochet,
		"Shots bounce off walls. Don't shoot yourself!")
	good("Super Bullet", "SB", SpecialShot, EffectSuperBullet,
		"Shoots through buildings. Can kill Phantom Zoned tanks.")
	good("Invisible Bullet", "IB", SpecialShot, EffectInvisibleBullet,
		"Your shots don't appear on other radars. Shoot 'em when they're not looking!")
	good("Stealth", "ST", NormalShot, EffectStealth,
		"Tank is invisible on radar. Shots are still visible. Sneak up behind enemies!")
	good("Tiny", "T", NormalShot, EffectTiny,
		"Tank is small and can get through small openings. Very hard to hit.")
	good("Narrow", "N", NormalShot, EffectNarrow,
		"Tank is super thin. Very hard to hit from front but is normal size from side. Can get through small openings.")
	good("Shield", "SH", NormalShot, EffectShield,
		"Getting hit only drops flag. Flag flies an extra-long time.")
	good("Steamroller", "SR", NormalShot, EffectSteamroller,
		"Destroys tanks you touch but you have to get really close.")
	good("Shock Wave", "SW", SpecialShot, EffectShockWave,
		"Firing destroys all tanks nearby. Don't kill yourself! Can kill tanks on/in buildings.")
	good("Phantom Zone", "PZ", NormalShot, EffectPhantomZone,
		"Teleporting toggles Zoned effect. Zoned tank can drive through buildings and can't shoot or be shot (except by superbullet and shock wave).")
	good("Jumping", "JP", NormalShot, EffectJumping,
		"Tank can jump. Can't steer in the air.")
	good("Identify", "ID", NormalShot, EffectIdentify,
		"Identifies type of nearest flag.")
	good("Cloaking", "CL", NormalShot, EffectCloaking,
		"Makes your tank invisible out-the-window. Still visible on radar.")
	good("Useless", "US", NormalShot, EffectUseless,
		"You have found the useless flag. Use it wisely.")
	good("Masquerade", "MQ", NormalShot, EffectMasquerade,
		"In opponent's hud, you appear as a teammate.")
	good("Seer", "SE", NormalShot, EffectSeer,
		"See stealthed, cloaked and masquerading tanks as normal.")
	good("Thief", "TH", SpecialShot, EffectThief,
		"Steal flags. Small and fast but can't kill.")
	good("Burrow", "BU", NormalShot, EffectBurrow,
		"Tank burrows underground, impervious to normal shots, but can be steamrolled by anyone!")
	good("Wings", "WG", NormalShot, EffectWings,
		"Tank can drive in air.")
	good("Agility", "A", NormalShot, EffectAgility,
		"Tank is quick and nimble making it easier to dodge.")

	bad("Colorblindness", "CB", EffectColorblindness,
		"Can't tell team colors. Don't shoot teammates!")
	bad("Obesity", "O", EffectObesity,
		"Tank becomes very large. Can't fit through teleporters.")
	bad("Left Turn Only", "LT", EffectLeftTurnOnly,
		"Can't turn right.")
	bad("Right Turn Only", "RT", EffectRightTurnOnly,
		"Can't turn left.")
	bad("Forward Only", "FO", EffectForwardOnly,
		"Can't drive in reverse.")
	bad("Reverse Only", "RO", EffectReverseOnly,
		"Can only drive in reverse.")
	bad("Momentum", "M", EffectMomentum,
		"Tank has inertia. Acceleration is limited.")
	bad("Blindness", "B", EffectBlindness,
		"Can't see out the window. Can still see on radar.")
	bad("Jamming", "JM", EffectJamming,
		"Radar doesn't work. Can still see.")
	bad("Wide Angle", "WA", EffectWideAngle,
		"Fish-eye lens distorts view.")
	bad("No Jumping", "NJ", EffectNoJumping,
		"Tank can't jump.")
	bad("Trigger Happy", "TR", EffectTriggerHappy,
		"Tank can't stop firing.")
	bad("Reverse Controls", "RC", EffectReverseControls,
		"Tank driving controls are reversed.")
	bad("Bouncy", "BY", EffectBouncy,
		"Tank can't stop bouncing.")
	bad("No Shot", "NS", EffectNoShot,
		"Tank can't shoot.")

	// Resolve degrades to this when an abbreviation has never been seen.
	// Deliberately outside the lookup map.
	r.unknown = &Type{
		Name: "Unknown", Abbrev: "??",
		Endurance: EnduranceNormal, Shot: NormalShot, Quality: QualityGood,
		Team: game.NoTeam, Effect: EffectNormal,
		Help: "Flag type unknown to this client.",
	}
}
