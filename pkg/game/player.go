package game

// PlayerID identifies a player within a game session. It is a single byte
// on the wire.
type PlayerID uint8

// NoPlayer is the sentinel meaning "no player", e.g. for a flag that is not
// being carried.
const NoPlayer PlayerID = 255
