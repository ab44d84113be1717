// Package openmeteo implements queries to Open-Meteo to retrieve
// hourly weather and marine forecasts. Data is requested per
// coordinate pair and returned as a time series of samples, one per
// hour. All times are local to the queried location. A value the
// upstream model does not provide for an hour is nil.
package openmeteo
