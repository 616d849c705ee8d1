package parser

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version='1.0' encoding='utf-8' ?>
<workbook source-build='2021.1.0' version='18.1'>
  <datasources>
    <datasource caption='Sample Sales' inline='true' name='federated.0abc1'>
      <connection class='postgres' dbname='sales' port='5432' server='db.internal'>
        <relation name='Custom SQL Query' type='text'>SELECT * FROM Orders</relation>
      </connection>
      <column caption='Profit Ratio' datatype='real' name='[Calculation_123]' role='measure'/>
      <column datatype='real' name='[Sales]' role='measure'/>
      <column datatype='string' hidden='true' name='[Region]' role='dimension'/>
    </datasource>
    <datasource caption='Budget' inline='true' name='federated.9xyz'>
      <connection class='excel-direct' cloudFileProvider='onedrive' filename='C:/Data/Budget.xlsx'/>
      <column caption='FY Budget' datatype='real' name='[Budget]' role='measure'/>
    </datasource>
  </datasources>
  <worksheets>
    <worksheet name='Sheet 1'>
      <table>
        <view>
          <datasources>
            <datasource caption='Sample Sales' name='federated.0abc1'/>
          </datasources>
          <datasource-dependencies datasource='federated.0abc1'>
            <column caption='Profit Ratio' datatype='real' name='[Calculation_123]'/>
            <column datatype='real' name='[Sales]'/>
          </datasource-dependencies>
          <datasource-dependencies datasource='Parameters'>
            <column caption='Top N' datatype='integer' name='[Parameter 1]'/>
          </datasource-dependencies>
          <style>
            <style-rule element='axis'>
              <format attr='color' value='#555555'/>
              <format attr='font-family' value='Tableau Book'/>
            </style-rule>
            <style-rule element='label'>
              <format attr='color' value='#e6a04c'/>
            </style-rule>
          </style>
          <panes>
            <pane>
              <encodings>
                <encoding attr='color' field='[federated.0abc1].[Region]' palette='tableau10_10' type='palette'/>
              </encodings>
            </pane>
          </panes>
        </view>
      </table>
    </worksheet>
    <worksheet name='Sheet 2'>
      <table>
        <view>
          <datasource-dependencies datasource='federated.9xyz'>
            <column caption='FY Budget' datatype='real' name='[Budget]'/>
          </datasource-dependencies>
          <tooltip>
            <formatted-text>
              <run fontcolor='#ff0000' fontname='Arial'>Over budget</run>
              <run>in the selected period</run>
            </formatted-text>
          </tooltip>
        </view>
      </table>
    </worksheet>
  </worksheets>
  <dashboards>
    <dashboard name='Overview'>
      <zones>
        <zone _.fcp.SetMembershipControl.false...type='bitmap' param='C:/Images/Logo.PNG' x='0' y='0'/>
        <zone _.fcp.SetMembershipControl.false...type='text' x='0' y='20000'/>
      </zones>
    </dashboard>
  </dashboards>
  <external>
    <shapes>
      <shape name='Arrows/Arrow_Up.PNG'/>
      <shape name=''/>
    </shapes>
  </external>
</workbook>
`

func loadSample(t *testing.T) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(sampleXML))
	return doc
}

func loadEmpty(t *testing.T) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString("<workbook version='18.1'/>"))
	return doc
}
