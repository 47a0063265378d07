package fares

import (
	"net/http"

	"github.com/le0holt/Fares/config"
)

func engineForRequest() *Engine {
	return NewEngine(store.Snapshot(), config.Config.Resolver)
}

func handleFare(w http.ResponseWriter, r *http.Request) {
	params := queryParams(r)
	if err := requireParams(params, "faretype", "start", "end"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	eng := engineForRequest()
	q := FareQuery{
		Route:    params["route"],
		FareType: params["faretype"],
		Start:    params["start"],
		End:      params["end"],
	}
	var res FareResult
	if params["startstage"] != "" || params["endstage"] != "" {
		res = eng.ResolveStages(q, params["startstage"], params["endstage"])
	} else {
		res = eng.ResolveFare(q)
	}
	status := http.StatusOK
	if res.Outcome == OutcomeRouteNotFound {
		status = http.StatusNotFound
	}
	writeJSON(w, status, fareResponse{
		FareResult: res,
		Display:    FormatResult(res, config.Config.Resolver.CurrencySymbol),
	})
}

func handlePlaces(w http.ResponseWriter, r *http.Request) {
	params := queryParams(r)
	eng := engineForRequest()
	if route := params["route"]; route != "" {
		writeJSON(w, http.StatusOK, listResponse{Items: eng.PlacesForRoute(route)})
		return
	}
	includeSchool := boolParam(params, "includeschool")
	writeJSON(w, http.StatusOK, listResponse{Items: eng.Topology().AllPlaces(includeSchool)})
}

func handleDestinations(w http.ResponseWriter, r *http.Request) {
	params := queryParams(r)
	if err := requireParams(params, "start"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	eng := engineForRequest()
	writeJSON(w, http.StatusOK, listResponse{
		Items: eng.Destinations(params["start"], params["route"]),
	})
}

func handleRoutes(w http.ResponseWriter, r *http.Request) {
	params := queryParams(r)
	eng := engineForRequest()
	includeSchool := boolParam(params, "includeschool")
	writeJSON(w, http.StatusOK, listResponse{Items: eng.Routes(includeSchool)})
}

func handleFareTypes(w http.ResponseWriter, r *http.Request) {
	params := queryParams(r)
	if params["route"] == "" && (params["start"] == "" || params["end"] == "") {
		writeError(w, http.StatusBadRequest,
			"Provide either route, or both start and end.")
		return
	}
	eng := engineForRequest()
	writeJSON(w, http.StatusOK, listResponse{
		Items: eng.FareTypes(params["route"], params["start"], params["end"]),
	})
}

func handleServices(w http.ResponseWriter, r *http.Request) {
	params := queryParams(r)
	if err := requireParams(params, "start", "end"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	eng := engineForRequest()
	writeJSON(w, http.StatusOK, listResponse{
		Items: eng.OtherServices(params["start"], params["end"], params["route"]),
	})
}

func handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required.")
		return
	}
	snap, err := store.Reload()
	resp := refreshResponse{Status: "ok", Documents: len(snap.Documents)}
	status := http.StatusOK
	if err != nil {
		resp.Status = "error"
		resp.Error = err.Error()
		status = http.StatusBadGateway
	}
	writeJSON(w, status, resp)
}
