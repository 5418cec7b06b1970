package nationalrail

import "github.com/TfGMEnterprise/national-rail-darwin/model"

// serviceFields classifies the children of a service element by local name.
// Every name belongs to exactly one table; anything not listed is unknown.
var serviceFields = struct {
	strings       map[string]func(*model.Service, *string)
	booleans      map[string]func(*model.Service, *bool)
	locationLists map[string]func(*model.Service, []model.Location)
	formations    map[string]func(*model.Service, *model.Formation)
	callingPoints map[string]func(*model.Service, []model.CallingPoint)
}{
	strings: map[string]func(*model.Service, *string){
		"sta":          func(s *model.Service, v *string) { s.Sta = v },
		"eta":          func(s *model.Service, v *string) { s.Eta = v },
		"std":          func(s *model.Service, v *string) { s.Std = v },
		"etd":          func(s *model.Service, v *string) { s.Etd = v },
		"platform":     func(s *model.Service, v *string) { s.Platform = v },
		"operator":     func(s *model.Service, v *string) { s.Operator = v },
		"operatorCode": func(s *model.Service, v *string) { s.OperatorCode = v },
		"serviceType":  func(s *model.Service, v *string) { s.ServiceType = v },
		"cancelReason": func(s *model.Service, v *string) { s.CancelReason = v },
		"delayReason":  func(s *model.Service, v *string) { s.DelayReason = v },
		"serviceID":    func(s *model.Service, v *string) { s.ServiceID = v },
		"length":       func(s *model.Service, v *string) { s.Length = v },
		"rsid":         func(s *model.Service, v *string) { s.Rsid = v },
		"crs":          func(s *model.Service, v *string) { s.Crs = v },
		"locationName": func(s *model.Service, v *string) { s.LocationName = v },
		"generatedAt":  func(s *model.Service, v *string) { s.GeneratedAt = v },
	},
	booleans: map[string]func(*model.Service, *bool){
		"isCircularRoute":         func(s *model.Service, v *bool) { s.IsCircularRoute = v },
		"isCancelled":             func(s *model.Service, v *bool) { s.IsCancelled = v },
		"filterLocationCancelled": func(s *model.Service, v *bool) { s.FilterLocationCancelled = v },
		"detachFront":             func(s *model.Service, v *bool) { s.DetachFront = v },
		"isReverseFormation":      func(s *model.Service, v *bool) { s.IsReverseFormation = v },
		"futureCancellation":      func(s *model.Service, v *bool) { s.FutureCancellation = v },
		"futureDelay":             func(s *model.Service, v *bool) { s.FutureDelay = v },
	},
	locationLists: map[string]func(*model.Service, []model.Location){
		"origin":              func(s *model.Service, v []model.Location) { s.Origin = v },
		"destination":         func(s *model.Service, v []model.Location) { s.Destination = v },
		"currentOrigins":      func(s *model.Service, v []model.Location) { s.CurrentOrigins = v },
		"currentDestinations": func(s *model.Service, v []model.Location) { s.CurrentDestinations = v },
	},
	formations: map[string]func(*model.Service, *model.Formation){
		"formation": func(s *model.Service, v *model.Formation) { s.Formation = v },
	},
	callingPoints: map[string]func(*model.Service, []model.CallingPoint){
		"previousCallingPoints":   func(s *model.Service, v []model.CallingPoint) { s.PreviousCallingPoints = v },
		"subsequentCallingPoints": func(s *model.Service, v []model.CallingPoint) { s.SubsequentCallingPoints = v },
	},
}
