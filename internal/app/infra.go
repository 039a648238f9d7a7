package app

import (
	"go.uber.org/fx"

	"github.com/healhub/healhub_backend/config"
	"github.com/healhub/healhub_backend/internal/repo"
	"github.com/healhub/healhub_backend/pkg/email"
	"github.com/healhub/healhub_backend/pkg/session"
	"github.com/healhub/healhub_backend/pkg/supabase"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(
		ProvideSupabaseClient,
		ProvideEmailClient,
		ProvideSessionStore,
		repo.NewUsers,
		repo.NewPatients,
		repo.NewAppointments,
		repo.NewClinics,
		repo.NewMedications,
		repo.NewHistory,
		repo.NewReports,
	),
)

func ProvideSupabaseClient(cfg *config.Config) (*supabase.Client, error) {
	return supabase.New(cfg.Supabase)
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.New(cfg.Email)
}

// ProvideSessionStore supplies the single in-process session slot shared
// by every service.
func ProvideSessionStore() *session.Store {
	return session.NewStore()
}
