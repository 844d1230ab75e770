package kundli

import "context"

// Endpoint names in the embedded catalog.
const (
	EndpointAdvancedPanchangSunrise = "advanced_panchang_sunrise"
	EndpointAshtakootPoints         = "match_ashtakoot_points"
	EndpointAstroDetails            = "astro_details"
	EndpointBasicGemSuggestion      = "basic_gem_suggestion"
	EndpointBasicPanchang           = "basic_panchang"
	EndpointBasicPanchangSunrise    = "basic_panchang_sunrise"
	EndpointBirthDetails            = "birth_details"
	EndpointAdvancedPanchang        = "advanced_panchang"
	EndpointCurrentVdasha           = "current_vdasha"
	EndpointNumeroFastsReport       = "numero_fasts_report"
	EndpointNumeroFavLord           = "numero_fav_lord"
	EndpointNumeroFavMantra         = "numero_fav_mantra"
	EndpointNumeroFavTime           = "numero_fav_time"
	EndpointGeneralHouseReport      = "general_house_report"
	EndpointGeneralRashiReport      = "general_rashi_report"
	EndpointPlanets                 = "planets"
	EndpointHoroChart               = "horo_chart"
	EndpointKalsarpaDetails         = "kalsarpa_details"
	EndpointMajorVdasha             = "major_vdasha"
	EndpointManglik                 = "manglik"
	EndpointMatchMakingReport       = "match_making_report"
	EndpointMatchManglikReport      = "match_manglik_report"
	EndpointMatchAstroDetails       = "match_astro_details"
	EndpointMatchBirthDetails       = "match_birth_details"
	EndpointMatchObstructions       = "match_obstructions"
	EndpointMatchPlanetDetails      = "match_planet_details"
	EndpointNumeroTable             = "numero_table"
	EndpointNumeroReport            = "numero_report"
	EndpointNumeroPlaceVastu        = "numero_place_vastu"
	EndpointPlanetPanchangSunrise   = "planet_panchang_sunrise"
	EndpointPlanetPanchang          = "planet_panchang"
	EndpointRudrakshaSuggestion     = "rudraksha_suggestion"
)

// Template parameter names.
const (
	ParamChartID    = "chart_id"
	ParamPlanetName = "planet_name"
)

// GetAdvancedPanchangAtTheTimeOfSunrise returns the complete panchang at the time of sunrise for the given date.
func (c *Client) GetAdvancedPanchangAtTheTimeOfSunrise(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointAdvancedPanchangSunrise, nil, payload)
}

// GetAshtakootDetails returns the complete ashtakoot analysis for a pair of horoscopes.
func (c *Client) GetAshtakootDetails(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointAshtakootPoints, nil, payload)
}

// GetBasicAstrologicalDetails returns avakahada details such as nakshatra, charan, tithi and yoni.
func (c *Client) GetBasicAstrologicalDetails(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointAstroDetails, nil, payload)
}

// GetBasicGemstoneSuggestion suggests life, lucky and benefic stones.
func (c *Client) GetBasicGemstoneSuggestion(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointBasicGemSuggestion, nil, payload)
}

// GetBasicPanchangDetails returns panchang elements with sunrise and sunset timings.
func (c *Client) GetBasicPanchangDetails(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointBasicPanchang, nil, payload)
}

// GetBasicPanchangDetailsAtTheTimeOfSunrise returns panchang elements and chaugadiya at the time of sunrise.
func (c *Client) GetBasicPanchangDetailsAtTheTimeOfSunrise(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointBasicPanchangSunrise, nil, payload)
}

// GetBirthDetails returns birth details with sunrise, sunset and ayanamsha.
func (c *Client) GetBirthDetails(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointBirthDetails, nil, payload)
}

// GetCompletePanchangDetails returns the complete panchang.
func (c *Client) GetCompletePanchangDetails(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointAdvancedPanchang, nil, payload)
}

// GetCurrentVimshottariDasha returns the currently running vimshottari dasha.
func (c *Client) GetCurrentVimshottariDasha(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointCurrentVdasha, nil, payload)
}

func (c *Client) GetFastsReport(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointNumeroFastsReport, nil, payload)
}

func (c *Client) GetFavourableLord(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointNumeroFavLord, nil, payload)
}

func (c *Client) GetFavourableMantra(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointNumeroFavMantra, nil, payload)
}

func (c *Client) GetFavourableTime(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointNumeroFavTime, nil, payload)
}

// GetGeneralHouseReport returns the general house report for planetName.
func (c *Client) GetGeneralHouseReport(ctx context.Context, planetName string, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointGeneralHouseReport, PathParams{ParamPlanetName: planetName}, payload)
}

// GetGeneralRashiReport returns the general rashi report for planetName.
func (c *Client) GetGeneralRashiReport(ctx context.Context, planetName string, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointGeneralRashiReport, PathParams{ParamPlanetName: planetName}, payload)
}

// GetPlanetaryPositions returns planetary positions including the ascendant, retrograde status and lordships.
func (c *Client) GetPlanetaryPositions(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointPlanets, nil, payload)
}

// GetHoroscopeCharts returns the divisional chart identified by chartID (D1, D9, ...).
func (c *Client) GetHoroscopeCharts(ctx context.Context, chartID string, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointHoroChart, PathParams{ParamChartID: chartID}, payload)
}

func (c *Client) GetKalsarpaDoshaReport(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointKalsarpaDetails, nil, payload)
}

// GetMajorVimshottariDashaDetails returns the complete mahadasha timeline.
func (c *Client) GetMajorVimshottariDashaDetails(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointMajorVdasha, nil, payload)
}

// GetManglikReport reports whether manglik dosha is present.
func (c *Client) GetManglikReport(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointManglik, nil, payload)
}

func (c *Client) GetMatchMakingReport(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointMatchMakingReport, nil, payload)
}

func (c *Client) GetMatchManglikReport(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointMatchManglikReport, nil, payload)
}

// GetMatchingAstrologyDetails returns varna, vashya, maitri, nadi and gan matching details.
func (c *Client) GetMatchingAstrologyDetails(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointMatchAstroDetails, nil, payload)
}

func (c *Client) GetMatchingBirthDetails(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointMatchBirthDetails, nil, payload)
}

func (c *Client) GetMatchingObstruction(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointMatchObstructions, nil, payload)
}

func (c *Client) GetMatchingPlanetaryDetails(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointMatchPlanetDetails, nil, payload)
}

// GetNumerologyBasicDetails returns the detailed numerology table.
func (c *Client) GetNumerologyBasicDetails(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointNumeroTable, nil, payload)
}

func (c *Client) GetNumerologyReport(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointNumeroReport, nil, payload)
}

func (c *Client) GetPlaceAndVastu(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointNumeroPlaceVastu, nil, payload)
}

func (c *Client) GetPlanetPanchangDetailsAtTheTimeOfSunrise(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointPlanetPanchangSunrise, nil, payload)
}

// GetPlanetaryPanchangDetails returns panchang planetary degrees and retrograde positions.
func (c *Client) GetPlanetaryPanchangDetails(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointPlanetPanchang, nil, payload)
}

func (c *Client) GetRudrakshaSuggestion(ctx context.Context, payload any) (*Response, error) {
	return c.Invoke(ctx, EndpointRudrakshaSuggestion, nil, payload)
}
