package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// stocksync operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "stocksync-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "stocksync-alerts",
					Rules: []Rule{
						{
							Alert: "StocksyncDown",
							Expr:  `absent(up{job="stocksync"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Stocksync is down",
								"description": "The stocksync job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "StocksyncReadinessDown",
							Expr:  `stocksync_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Stocksync readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "StocksyncHighErrorRate",
							Expr:  `stocksync:http_errors:rate5m / stocksync:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on stocksync",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "StocksyncImportErrors",
							Expr:  `stocksync:import_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Import batches are failing",
								"description": "The import pipeline has been producing failed batches for more than 5 minutes.",
							},
						},
						{
							Alert: "StocksyncNotificationFailures",
							Expr:  `increase(stocksync_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more import summary webhooks have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
