// Package mongodb implementa los puertos de persistencia sobre MongoDB.
// La consistencia es por documento: las secuencias multi-paso de los
// casos de uso no se envuelven en transacciones y los índices únicos son
// la fuente de verdad ante carreras.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tu-usuario/modelcar-catalog/pkg/config"
)

// Connect abre el cliente de MongoDB, registra el codec de decimales y
// verifica la conexión con un ping.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRegistry(newRegistry()) // decimal.Decimal <-> Decimal128 en todas las operaciones

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar a mongodb: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, timeout)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("ping a mongodb: %w", err)
	}

	return client, nil
}

// Database devuelve el handle de la base configurada.
func Database(client *mongo.Client, cfg config.MongoConfig) *mongo.Database {
	return client.Database(cfg.DBName)
}
