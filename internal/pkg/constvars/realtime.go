package constvars

// Socket.IO event names used on the push channel.
const (
	EventAttentionResolved  = "notificacionAtencion"
	EventAttentionRequested = "atencion"
)

// Engine.IO v4 packet types.
const (
	EnginePacketOpen    = '0'
	EnginePacketClose   = '1'
	EnginePacketPing    = '2'
	EnginePacketPong    = '3'
	EnginePacketMessage = '4'
	EnginePacketUpgrade = '5'
	EnginePacketNoop    = '6'
)

// Socket.IO v5 packet types, carried inside an Engine.IO message packet.
const (
	SocketPacketConnect      = '0'
	SocketPacketDisconnect   = '1'
	SocketPacketEvent        = '2'
	SocketPacketAck          = '3'
	SocketPacketConnectError = '4'
)

const (
	EngineIOProtocolVersion = "4"
	EngineIOTransport       = "websocket"
)
