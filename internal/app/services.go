package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/iwantdrugsxd/mind-ease/config"
	"github.com/iwantdrugsxd/mind-ease/internal/intent"
	"github.com/iwantdrugsxd/mind-ease/internal/repo"
	"github.com/iwantdrugsxd/mind-ease/internal/service/auth"
	"github.com/iwantdrugsxd/mind-ease/internal/service/clinician"
	"github.com/iwantdrugsxd/mind-ease/internal/service/conversation"
	"github.com/iwantdrugsxd/mind-ease/internal/service/notification"
	"github.com/iwantdrugsxd/mind-ease/internal/service/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/service/screening"
	"github.com/iwantdrugsxd/mind-ease/internal/service/selfcare"
	pasetotoken "github.com/iwantdrugsxd/mind-ease/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvidePatientService,
		ProvideScreeningService,
		ProvideConversationService,
		ProvideSelfCareService,
		ProvideClinicianService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideScreeningService(db *repo.Client, nc *nats.Conn) screening.Service {
	return screening.New(db, nc)
}

func ProvideConversationService(
	db *repo.Client,
	nc *nats.Conn,
	model *intent.Model,
	screenings screening.Service,
) conversation.Service {
	return conversation.New(db, nc, model, screenings)
}

func ProvideSelfCareService(db *repo.Client) selfcare.Service {
	return selfcare.New(db)
}

func ProvideClinicianService(db *repo.Client) clinician.Service {
	return clinician.New(db)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
