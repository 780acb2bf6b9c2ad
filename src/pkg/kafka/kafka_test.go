package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
)

func TestSaramaConfig(t *testing.T) {
	conf := Cfg{AppName: "rider-client"}.saramaConfig()
	assert.Equal(t, "rider-client", conf.ClientID)
	assert.Equal(t, sarama.WaitForAll, conf.Producer.RequiredAcks)
	assert.True(t, conf.Producer.Return.Successes)
	assert.False(t, conf.Net.SASL.Enable)
	assert.NoError(t, conf.Validate())

	conf = Cfg{AppName: "rider-client", KafkaUsername: "user", KafkaPassword: "pass"}.saramaConfig()
	assert.True(t, conf.Net.SASL.Enable)
	assert.True(t, conf.Net.TLS.Enable)
	assert.Equal(t, sarama.SASLMechanism(sarama.SASLTypePlaintext), conf.Net.SASL.Mechanism)
	assert.Equal(t, "user", conf.Net.SASL.User)
}
