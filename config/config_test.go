package config_test

import (
	"testing"

	"github.com/stockd/inventory-service/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.LoadDefaults()

	if cfg.AppName != config.AppName {
		t.Errorf("appName got=%s want=%s", cfg.AppName, config.AppName)
	}
	if cfg.Port != "8080" {
		t.Errorf("port got=%s want=8080", cfg.Port)
	}
	if cfg.Db.Host != "localhost" {
		t.Errorf("db host got=%s want=localhost", cfg.Db.Host)
	}
	if !cfg.Email.Mock {
		t.Error("email mock should default to true")
	}
	if cfg.RabbitMQ.Stock.Exchange != "stock.exchange" {
		t.Errorf("stock exchange got=%s want=stock.exchange", cfg.RabbitMQ.Stock.Exchange)
	}
	if cfg.RabbitMQ.Product.Dlt.Exchange != "product.dlt.exchange" {
		t.Errorf("product dlt exchange got=%s want=product.dlt.exchange", cfg.RabbitMQ.Product.Dlt.Exchange)
	}
	if cfg.Db.Pass == "" {
		t.Error("expected a default db password")
	}
}
