package app

import (
	"go.uber.org/fx"

	"github.com/healhub/healhub_backend/config"
	"github.com/healhub/healhub_backend/internal/repo"
	"github.com/healhub/healhub_backend/internal/service/admin"
	"github.com/healhub/healhub_backend/internal/service/auth"
	"github.com/healhub/healhub_backend/internal/service/doctor"
	"github.com/healhub/healhub_backend/pkg/email"
	"github.com/healhub/healhub_backend/pkg/session"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideAdminService,
		ProvideDoctorService,
	),
)

func ProvideAuthService(users *repo.Users, mailer *email.Client, sess *session.Store, cfg *config.Config) auth.Service {
	return auth.New(users, mailer, sess, cfg)
}

func ProvideAdminService(users *repo.Users, sess *session.Store) admin.Service {
	return admin.New(users, sess)
}

func ProvideDoctorService(
	patients *repo.Patients,
	appointments *repo.Appointments,
	clinics *repo.Clinics,
	medications *repo.Medications,
	history *repo.History,
	reports *repo.Reports,
	sess *session.Store,
) doctor.Service {
	return doctor.New(patients, appointments, clinics, medications, history, reports, sess)
}
