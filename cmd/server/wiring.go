package main

import (
	"math/rand/v2"
	"time"

	"gorm.io/gorm"

	"lifeplan/config"
	"lifeplan/pkg/history"

	planRepoImp "lifeplan/pkg/plan/repositoryImp"
	planSvc "lifeplan/pkg/plan/service"
	planSvcImp "lifeplan/pkg/plan/serviceImp"
	prinRepoImp "lifeplan/pkg/principles/repositoryImp"
	prinSvc "lifeplan/pkg/principles/service"
	prinSvcImp "lifeplan/pkg/principles/serviceImp"
	userRepoImp "lifeplan/pkg/user/repositoryImp"
	userSvc "lifeplan/pkg/user/service"
	userSvcImp "lifeplan/pkg/user/serviceImp"
)

type services struct {
	users      userSvc.UserService
	principles prinSvc.PrinciplesService
	plans      planSvc.PlanService
	now        func() time.Time
	loc        *time.Location
}

func newServices(db *gorm.DB, cfg config.AppConfig, now func() time.Time) services {
	seed := uint64(now().UnixNano())
	sampler := history.NewSampler(rand.NewPCG(seed, seed>>1|1))
	loc := cfg.Location()
	return services{
		users:      userSvcImp.NewUserService(userRepoImp.New(db)),
		principles: prinSvcImp.NewPrinciplesService(prinRepoImp.New(db), now),
		plans:      planSvcImp.NewPlanService(planRepoImp.New(db), sampler, now, loc),
		now:        now,
		loc:        loc,
	}
}
