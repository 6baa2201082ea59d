package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSocketPacket(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantType      byte
		wantNamespace string
		wantData      string
	}{
		{name: "connect ack", raw: `0{"sid":"x"}`, wantType: '0', wantData: `{"sid":"x"}`},
		{name: "event", raw: `2["notificacionAtencion"]`, wantType: '2', wantData: `["notificacionAtencion"]`},
		{name: "event with ack id", raw: `213["a",1]`, wantType: '2', wantData: `["a",1]`},
		{name: "explicit default namespace", raw: `2/,["a"]`, wantType: '2', wantData: `["a"]`},
		{name: "custom namespace", raw: `2/admin,["a"]`, wantType: '2', wantNamespace: "/admin", wantData: `["a"]`},
		{name: "disconnect", raw: `1`, wantType: '1'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packet, err := parseSocketPacket([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, packet.Type)
			assert.Equal(t, tt.wantNamespace, packet.Namespace)
			assert.Equal(t, tt.wantData, string(packet.Data))
		})
	}

	_, err := parseSocketPacket(nil)
	assert.Error(t, err)
}

func TestDecodeEventData(t *testing.T) {
	name, payload, err := decodeEventData([]byte(`["notificacionAtencion"]`))
	require.NoError(t, err)
	assert.Equal(t, "notificacionAtencion", name)
	assert.Nil(t, payload)

	name, payload, err = decodeEventData([]byte(`["atencion",{"id":"r1"},"extra"]`))
	require.NoError(t, err)
	assert.Equal(t, "atencion", name)
	assert.JSONEq(t, `{"id":"r1"}`, string(payload))

	_, _, err = decodeEventData([]byte(`[]`))
	assert.Error(t, err)

	_, _, err = decodeEventData([]byte(`[42]`))
	assert.Error(t, err)
}

func TestEncodeEventPacket(t *testing.T) {
	packet, err := encodeEventPacket("atencion", map[string]string{"id": "r1"})
	require.NoError(t, err)
	assert.Equal(t, `42["atencion",{"id":"r1"}]`, string(packet))

	packet, err = encodeEventPacket("ping", nil)
	require.NoError(t, err)
	assert.Equal(t, `42["ping"]`, string(packet))
}

func TestParseOpenPayload(t *testing.T) {
	open, err := parseOpenPayload([]byte(`{"sid":"abc","upgrades":[],"pingInterval":25000,"pingTimeout":20000}`))
	require.NoError(t, err)
	assert.Equal(t, "abc", open.Sid)
	assert.Equal(t, 25000, open.PingInterval)

	_, err = parseOpenPayload([]byte(`{"pingInterval":1}`))
	assert.Error(t, err)
}

func TestSocketURL(t *testing.T) {
	u, err := socketURL("https://api.dataweb.tech/")
	require.NoError(t, err)
	assert.Equal(t, "wss://api.dataweb.tech/socket.io/?EIO=4&transport=websocket", u)

	u, err = socketURL("http://127.0.0.1:8080")
	require.NoError(t, err)
	assert.Equal(t, "ws://127.0.0.1:8080/socket.io/?EIO=4&transport=websocket", u)

	_, err = socketURL("ftp://example.com")
	assert.Error(t, err)
}
