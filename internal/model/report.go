package model

import "time"

type PortfolioReport struct {
	GeneratedAt time.Time
	Properties  []Property
	Tenants     []*Tenant
	Agreements  []*Agreement
}

type AgreementDocument struct {
	Agreement   *Agreement
	GeneratedAt time.Time
}
